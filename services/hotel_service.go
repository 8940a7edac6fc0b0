package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotllink-backend/models"
	"hotllink-backend/repositories"
)

type HotelService struct {
	hotels repositories.HotelRepository
}

func NewHotelService(hotels repositories.HotelRepository) *HotelService {
	return &HotelService{hotels: hotels}
}

// ListHotels returns the full catalog. Filtering happens client-side.
func (s *HotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.hotels.ListAll(ctx)
}

func (s *HotelService) GetHotel(ctx context.Context, id uint) (*models.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}
