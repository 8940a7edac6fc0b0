package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotllink-backend/services"
)

type CreateBookingRequest struct {
	HotelID    uint    `json:"hotelId" binding:"required"`
	HotelName  string  `json:"hotelName" binding:"required"`
	CheckIn    string  `json:"checkIn" binding:"required"`
	CheckOut   string  `json:"checkOut" binding:"required"`
	Guests     int     `json:"guests" binding:"required,min=1"`
	TotalPrice float64 `json:"totalPrice" binding:"required"`
	UserID     uint    `json:"userId" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	Log        *logrus.Logger
}

func NewBookingController(svc *services.BookingService, log *logrus.Logger) *BookingController {
	return &BookingController{BookingSvc: svc, Log: log}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking payload"})
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		HotelID:    req.HotelID,
		HotelName:  req.HotelName,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		UserID:     req.UserID,
	})
	if err != nil {
		ctrl.Log.WithError(err).Error("failed to create booking")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctrl.Log.WithFields(logrus.Fields{
		"bookingId": booking.ID,
		"hotelId":   booking.HotelID,
		"userId":    booking.UserID,
	}).Info("booking created")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking successful",
		"booking": booking,
	})
}

func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}

	bookings, err := ctrl.BookingSvc.ListUserBookings(c.Request.Context(), uint(userID))
	if err != nil {
		ctrl.Log.WithError(err).Error("failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
