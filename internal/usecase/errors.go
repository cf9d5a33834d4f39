package usecase

import "errors"

// Business errors returned by services. Handlers map these to the JSON
// envelope with errors.Is; anything else becomes a generic 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInsufficientStock  = errors.New("insufficient product stock")
	ErrNoFile             = errors.New("no file uploaded")
)
