package registry

import "errors"

// ErrUserAlreadyExists happens when a username is registered twice
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrUserNotFound happens when a result is recorded for an unregistered user
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidUsername happens when a username is empty or too long
var ErrInvalidUsername = errors.New("username must be between 1 and 64 characters")

// ErrInvalidDelta happens when a count would go below zero
var ErrInvalidDelta = errors.New("count cannot be negative")
