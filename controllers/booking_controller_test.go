package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotllink-backend/models"
	"hotllink-backend/services"
)

// MockBookingRepository is a mock implementation of repositories.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	booking.ID = 11
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func bookingRouter(repo *MockBookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewBookingService(repo)
	ctrl := NewBookingController(svc, testLogger())

	r := gin.New()
	r.POST("/api/bookings", ctrl.CreateBooking)
	r.GET("/api/bookings", ctrl.GetUserBookings)
	return r
}

func TestCreateBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	r := bookingRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(
		`{"hotelId":3,"hotelName":"Southern Sun Maputo","checkIn":"2025-01-01","checkOut":"2025-01-05","guests":2,"totalPrice":560,"userId":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking successful", body.Message)
	assert.Equal(t, models.BookingStatusConfirmed, body.Booking.Status)
	assert.Equal(t, "2025-01-01", body.Booking.CheckIn)
	assert.Equal(t, "2025-01-05", body.Booking.CheckOut)
	assert.Equal(t, 2, body.Booking.Guests)
	assert.Equal(t, 560.0, body.Booking.TotalPrice)

	repo.AssertExpectations(t)
}

func TestCreateBooking_InvalidPayload(t *testing.T) {
	r := bookingRouter(new(MockBookingRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"guests":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserBookings(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListByUser", mock.Anything, uint(7)).Return([]models.Booking{
		{ID: 11, UserID: 7, HotelName: "Southern Sun Maputo", Status: models.BookingStatusConfirmed},
	}, nil)

	r := bookingRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?userId=7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
	assert.Equal(t, "Southern Sun Maputo", bookings[0].HotelName)
}

func TestGetUserBookings_MissingUserID(t *testing.T) {
	r := bookingRouter(new(MockBookingRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID is required")
}
