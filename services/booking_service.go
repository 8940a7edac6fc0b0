package services

import (
	"context"

	"hotllink-backend/models"
	"hotllink-backend/repositories"
)

type BookingService struct {
	bookings repositories.BookingRepository
}

func NewBookingService(bookings repositories.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

// CreateBookingInput carries the booking form fields as submitted. The hotel
// and user references are not verified and no availability check runs against
// existing bookings; overlapping stays for the same hotel are accepted.
type CreateBookingInput struct {
	HotelID    uint
	HotelName  string
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice float64
	UserID     uint
}

// CreateBooking persists a confirmed booking and returns it.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	booking := &models.Booking{
		UserID:     in.UserID,
		HotelID:    in.HotelID,
		HotelName:  in.HotelName,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		TotalPrice: in.TotalPrice,
		Status:     models.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListUserBookings returns all bookings for one user in storage order.
func (s *BookingService) ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	return s.bookings.ListByUser(ctx, userID)
}
