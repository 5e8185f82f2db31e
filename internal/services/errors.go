package services

import "errors"

var (
	// ErrInvalidReference is returned when a resume reference is missing or blank.
	ErrInvalidReference = errors.New("resume reference is required")

	// ErrInvalidPayload is returned when resume data cannot be decoded into
	// anything persistable.
	ErrInvalidPayload = errors.New("resume data is not usable")

	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
