package services

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned when no user matches a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrHotelNotFound is returned when a hotel id resolves to nothing.
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrMissingUserID is returned when a booking listing is requested without a user id.
	ErrMissingUserID = errors.New("user id is required")
)
