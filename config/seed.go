package config

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"hotllink-backend/models"
)

type seedHotel struct {
	Name        string
	Location    string
	Rating      int
	Reviews     int
	Price       float64
	Image       string
	Amenities   []string
	Description string
}

var seedHotels = []seedHotel{
	{
		Name:        "Polana Serena Hotel",
		Location:    "Maputo, Moçambique",
		Rating:      5,
		Reviews:     1023,
		Price:       350,
		Image:       "https://dynamic-media-cdn.tripadvisor.com/media/photo-s/02/63/3d/83/pool.jpg?w=600&h=400&s=1",
		Amenities:   []string{"wifi", "parking", "restaurant", "gym", "spa"},
		Description: "Resort de luxo à beira-mar com comodidades de classe mundial e vistas deslumbrantes para o oceano.",
	},
	{
		Name:        "Radisson Blu Hotel & Residence",
		Location:    "Maputo, Moçambique",
		Rating:      5,
		Reviews:     850,
		Price:       320,
		Image:       "https://cf.bstatic.com/xdata/images/hotel/max1024x768/59637868.jpg",
		Amenities:   []string{"wifi", "restaurant", "gym", "pool"},
		Description: "Hotel moderno com vista para o mar, piscina e restaurante internacional.",
	},
	{
		Name:        "Southern Sun Maputo",
		Location:    "Maputo, Moçambique",
		Rating:      4,
		Reviews:     780,
		Price:       280,
		Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQKPt_zh1PA1JY6mBeMHL2AFNO1GbQTvfl8vw&s",
		Amenities:   []string{"wifi", "parking", "restaurant", "pool"},
		Description: "Hotel elegante à beira-mar com piscina, restaurante e fácil acesso à praia.",
	},
	{
		Name:        "Hotel Cardoso",
		Location:    "Maputo, Moçambique",
		Rating:      4,
		Reviews:     600,
		Price:       210,
		Image:       "https://cf.bstatic.com/xdata/images/hotel/max1024x768/37868763.jpg",
		Amenities:   []string{"wifi", "restaurant", "pool", "gym"},
		Description: "Hotel tradicional com vista panorâmica para a baía de Maputo e jardins exuberantes.",
	},
	{
		Name:        "Anantara Bazaruto Island Resort",
		Location:    "Ilha de Bazaruto, Moçambique",
		Rating:      5,
		Reviews:     430,
		Price:       700,
		Image:       "https://cf.bstatic.com/xdata/images/hotel/max1024x768/23456789.jpg",
		Amenities:   []string{"wifi", "restaurant", "spa", "pool"},
		Description: "Resort de luxo em ilha paradisíaca, com villas privativas e experiências exclusivas.",
	},
	{
		Name:        "Hotel Avenida",
		Location:    "Maputo, Moçambique",
		Rating:      4,
		Reviews:     520,
		Price:       250,
		Image:       "https://cf.bstatic.com/xdata/images/hotel/max1024x768/34567890.jpg",
		Amenities:   []string{"wifi", "restaurant", "gym", "spa"},
		Description: "Hotel sofisticado no centro de Maputo, ideal para negócios e lazer.",
	},
}

// SeedDatabase populates the hotel catalog once. Amenity tags are checked
// against the amenity table first; an unknown tag aborts startup instead of
// being dropped on the floor.
func SeedDatabase() error {
	var count int64
	DB.Model(&models.Hotel{}).Count(&count)
	if count > 0 {
		log.Println("Hotels already seeded")
		return nil
	}

	hotels := make([]models.Hotel, 0, len(seedHotels))
	for _, sh := range seedHotels {
		if err := models.ValidateAmenityTags(sh.Amenities); err != nil {
			return fmt.Errorf("seed hotel %q: %w", sh.Name, err)
		}
		amenities, err := json.Marshal(sh.Amenities)
		if err != nil {
			return fmt.Errorf("seed hotel %q: %w", sh.Name, err)
		}
		hotels = append(hotels, models.Hotel{
			Name:        sh.Name,
			Location:    sh.Location,
			Rating:      sh.Rating,
			Reviews:     sh.Reviews,
			Price:       sh.Price,
			Image:       sh.Image,
			Amenities:   datatypes.JSON(amenities),
			Description: sh.Description,
		})
	}

	if err := DB.Create(&hotels).Error; err != nil {
		return fmt.Errorf("seed hotels: %w", err)
	}
	log.Println("Hotels seeded successfully")
	return nil
}
