package services

import "errors"

// Error variables
var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrDreamNotFound        = errors.New("dream not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSelfFollow           = errors.New("you cannot follow yourself")
	ErrSelfMessage          = errors.New("you cannot message yourself")
	ErrEmptyContent         = errors.New("content is required")
	ErrBioTooLong           = errors.New("bio must be at most 100 characters")
	ErrInvalidInput         = errors.New("invalid input")
)
