package store

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionNotFound    = errors.New("session not found")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrStatusNotFound     = errors.New("status not found")
)
