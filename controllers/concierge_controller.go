package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotllink-backend/services"
)

type TripPlannerRequest struct {
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Preferences string `json:"preferences"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ConciergeController serves the static travel-services endpoints.
type ConciergeController struct {
	ConciergeSvc *services.ConciergeService
}

func NewConciergeController(svc *services.ConciergeService) *ConciergeController {
	return &ConciergeController{ConciergeSvc: svc}
}

func (ctrl *ConciergeController) GetCars(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.ConciergeSvc.Cars())
}

func (ctrl *ConciergeController) GetTranslators(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.ConciergeSvc.Translators())
}

func (ctrl *ConciergeController) GetCityGuide(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.ConciergeSvc.CityGuide())
}

func (ctrl *ConciergeController) TripPlanner(c *gin.Context) {
	var req TripPlannerRequest
	_ = c.ShouldBindJSON(&req)

	planID := ctrl.ConciergeSvc.PlanTrip(req.Destination, req.Dates, req.Preferences)
	c.JSON(http.StatusOK, gin.H{
		"message": "Trip plan request received!",
		"planId":  planID,
	})
}

func (ctrl *ConciergeController) Contact(c *gin.Context) {
	var req ContactRequest
	_ = c.ShouldBindJSON(&req)

	ctrl.ConciergeSvc.Contact(req.Name, req.Email, req.Message)
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}
