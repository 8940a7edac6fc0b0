package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:255" json:"name"`
	Location string  `gorm:"size:255" json:"location"`
	Rating   int     `json:"rating"`
	Reviews  int     `gorm:"default:0" json:"reviews"`
	Price    float64 `json:"price"`
	Image    string  `gorm:"size:512" json:"image"`

	// Ordered amenity tag list, e.g. ["wifi","pool"]. Tags must exist in the
	// amenity table; the seeder rejects unknown ones.
	Amenities datatypes.JSON `json:"amenities"`

	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
