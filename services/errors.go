package services

import "errors"

// Error sentinel yang dipetakan controller ke status HTTP.
var (
	// ErrInvalidCredentials -> 401, email tidak ditemukan saat login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken -> 409, email sudah terdaftar saat signup.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrReservationNotFound -> 404.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrUserNotFound -> 404.
	ErrUserNotFound = errors.New("user not found")
	// ErrTableNotFound -> 404.
	ErrTableNotFound = errors.New("table not found")
	// ErrSlotTaken -> 409, meja sudah dipesan untuk jam yang sama.
	ErrSlotTaken = errors.New("table is already booked for this time")
	// ErrValidation -> 400, dibungkus dengan detail via fmt.Errorf("%w: ...").
	ErrValidation = errors.New("validation failed")
)
