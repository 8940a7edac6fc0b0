// Package client is a Go client for the HotlLink API. It owns an explicit
// session value instead of ambient global auth state: Login populates it,
// Logout clears it, and the booking calls refuse to run without it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hotllink-backend/models"
)

// ErrNotAuthenticated is returned by protected calls when no session is live.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response decoded from the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Session is the authenticated state for one signed-in user.
type Session struct {
	User  models.PublicUser
	Token string
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Authenticated reports whether a session is live.
func (c *Client) Authenticated() bool {
	return c.session != nil
}

// Session returns a copy of the current session, if any.
func (c *Client) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Logout clears the session.
func (c *Client) Logout() {
	c.session = nil
}

type authResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// Register creates an account. It does not start a session.
func (c *Client) Register(ctx context.Context, name, email, password string) (models.PublicUser, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return models.PublicUser{}, err
	}
	return out.User, nil
}

// Login authenticates and stores the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return Session{}, err
	}
	c.session = &Session{User: out.User, Token: out.Token}
	return *c.session, nil
}

// Hotels fetches the full catalog.
func (c *Client) Hotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := c.do(ctx, http.MethodGet, "/api/hotels", nil, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// Hotel fetches one catalog entry.
func (c *Client) Hotel(ctx context.Context, id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/hotels/%d", id), nil, &hotel); err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

type bookingResponse struct {
	Message string         `json:"message"`
	Booking models.Booking `json:"booking"`
}

// CreateBooking books the given hotel for the session user. The total follows
// the upstream form: nightly price times guest count.
func (c *Client) CreateBooking(ctx context.Context, hotel models.Hotel, checkIn, checkOut string, guests int) (models.Booking, error) {
	if c.session == nil {
		return models.Booking{}, ErrNotAuthenticated
	}

	var out bookingResponse
	err := c.do(ctx, http.MethodPost, "/api/bookings", map[string]any{
		"hotelId":    hotel.ID,
		"hotelName":  hotel.Name,
		"checkIn":    checkIn,
		"checkOut":   checkOut,
		"guests":     guests,
		"totalPrice": hotel.Price * float64(guests),
		"userId":     c.session.User.ID,
	}, &out)
	if err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

// Bookings lists the session user's bookings.
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	if c.session == nil {
		return nil, ErrNotAuthenticated
	}

	var bookings []models.Booking
	path := fmt.Sprintf("/api/bookings?userId=%d", c.session.User.ID)
	if err := c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var msg struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
