package services

import "errors"

// Sentinel errors surfaced by the services; the controllers map them onto
// HTTP status codes (404, 403, 409, 400, 502).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoProfile          = errors.New("nutrition profile required")
	ErrGeneration         = errors.New("AI generation failed")
)
