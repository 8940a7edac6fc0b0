package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotllink-backend/services"
)

type HotelController struct {
	HotelSvc *services.HotelService
	Log      *logrus.Logger
}

func NewHotelController(svc *services.HotelService, log *logrus.Logger) *HotelController {
	return &HotelController{HotelSvc: svc, Log: log}
}

func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.HotelSvc.ListHotels(c.Request.Context())
	if err != nil {
		ctrl.Log.WithError(err).Error("failed to list hotels")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
		return
	}

	hotel, err := ctrl.HotelSvc.GetHotel(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		ctrl.Log.WithError(err).Error("failed to fetch hotel")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, hotel)
}
