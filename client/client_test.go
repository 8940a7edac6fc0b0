package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotllink-backend/models"
)

// stubAPI emulates just enough of the server for client-side behavior tests.
func stubAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"user":    models.PublicUser{ID: 7, Name: "Ana", Email: req.Email},
			"token":   "session-token",
		})
	})

	mux.HandleFunc("GET /api/hotels", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Hotel{
			{ID: 3, Name: "Southern Sun Maputo", Price: 280},
		})
	})

	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
			return
		}
		var req models.Booking
		_ = json.NewDecoder(r.Body).Decode(&req)
		req.ID = 11
		req.Status = models.BookingStatusConfirmed
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Booking successful",
			"booking": req,
		})
	})

	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
			return
		}
		if r.URL.Query().Get("userId") == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "User ID is required"})
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Booking{
			{ID: 11, UserID: 7, HotelName: "Southern Sun Maputo", Status: models.BookingStatusConfirmed},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GateWithoutSession(t *testing.T) {
	srv := stubAPI(t)
	c := New(srv.URL)

	assert.False(t, c.Authenticated())

	_, err := c.Bookings(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.CreateBooking(context.Background(), models.Hotel{ID: 3}, "2025-01-01", "2025-01-05", 2)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClient_LoginBookingFlow(t *testing.T) {
	srv := stubAPI(t)
	c := New(srv.URL)

	session, err := c.Login(context.Background(), "ana@example.com", "secret")
	assert.NoError(t, err)
	assert.True(t, c.Authenticated())
	assert.Equal(t, uint(7), session.User.ID)

	hotels, err := c.Hotels(context.Background())
	assert.NoError(t, err)
	assert.Len(t, hotels, 1)

	// Total is nightly price times guests, as the upstream form computes it.
	booking, err := c.CreateBooking(context.Background(), hotels[0], "2025-01-01", "2025-01-05", 2)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 560.0, booking.TotalPrice)
	assert.Equal(t, uint(7), booking.UserID)

	bookings, err := c.Bookings(context.Background())
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)

	c.Logout()
	assert.False(t, c.Authenticated())
	_, ok := c.Session()
	assert.False(t, ok)
}

func TestClient_LoginFailure(t *testing.T) {
	srv := stubAPI(t)
	c := New(srv.URL)

	_, err := c.Login(context.Background(), "ana@example.com", "wrong")
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.False(t, c.Authenticated())
}
