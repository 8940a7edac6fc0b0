package services

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Car is a rental listing served from the static concierge data.
type Car struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Price    float64  `json:"price"`
	Seats    int      `json:"seats"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
}

type Translator struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
	Rating    float64  `json:"rating"`
	Price     float64  `json:"price"`
	Available bool     `json:"available"`
}

type CityGuideEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ConciergeService serves the static travel-services catalog and accepts
// trip-planner and contact submissions. Nothing here touches the database.
type ConciergeService struct {
	log *logrus.Logger
}

func NewConciergeService(log *logrus.Logger) *ConciergeService {
	return &ConciergeService{log: log}
}

func (s *ConciergeService) Cars() []Car {
	return cars
}

func (s *ConciergeService) Translators() []Translator {
	return translators
}

func (s *ConciergeService) CityGuide() []CityGuideEntry {
	return cityGuide
}

// PlanTrip records a trip-planner request and hands back a reference id.
// There is no planner behind it; the id only acknowledges receipt.
func (s *ConciergeService) PlanTrip(destination, dates, preferences string) int {
	planID := rand.Intn(1000)
	s.log.WithFields(logrus.Fields{
		"destination": destination,
		"dates":       dates,
		"preferences": preferences,
		"planId":      planID,
	}).Info("trip planner request received")
	return planID
}

// Contact records a contact-form submission.
func (s *ConciergeService) Contact(name, email, message string) {
	s.log.WithFields(logrus.Fields{
		"name":    name,
		"email":   email,
		"message": message,
	}).Info("contact form submission received")
}
