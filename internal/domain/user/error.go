package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrContactTaken = errors.New("email or phone number already registered")
)
