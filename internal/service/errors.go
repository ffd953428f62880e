package service

import "errors"

var (
	// ErrNoIngredients is returned when a generation request carries no usable ingredient.
	ErrNoIngredients = errors.New("no ingredients provided")
	// ErrGeneration wraps any failure of the text-generation provider.
	ErrGeneration = errors.New("recipe generation failed")

	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDatabaseUnavailable = errors.New("database not available")
	ErrInvalidToken        = errors.New("invalid token")
)
