package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmailExists      = errors.New("email already registered")
)
