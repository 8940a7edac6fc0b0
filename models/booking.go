package models

import "time"

// Booking statuses. Only "confirmed" is ever written by the API; there is no
// cancellation or completion endpoint.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint `gorm:"index;column:user_id" json:"userId"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotelId"`

	// Denormalized so the dashboard can render without a join.
	HotelName string `gorm:"size:255;column:hotel_name" json:"hotelName"`

	// Date strings as submitted (YYYY-MM-DD). Ordering is not enforced.
	CheckIn  string `gorm:"size:32;column:check_in" json:"checkIn"`
	CheckOut string `gorm:"size:32;column:check_out" json:"checkOut"`

	Guests     int     `gorm:"default:1" json:"guests"`
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	Status     string  `gorm:"size:32;default:confirmed" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
