package admin

import "errors"

// Repository-level errors
var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists")
	ErrEmailTaken    = errors.New("email already in use")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
