package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotllink-backend/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
