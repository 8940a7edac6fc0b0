package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotllink-backend/models"
)

type HotelRepository interface {
	ListAll(ctx context.Context) ([]models.Hotel, error)
	FindByID(ctx context.Context, id uint) (*models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) ListAll(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}
