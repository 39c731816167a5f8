package catalog

import "errors"

var (
	ErrNotFound      = errors.New("service not found")
	ErrInaccessible  = errors.New("service not accessible for subscription")
	ErrLimitExceeded = errors.New("service usage limit exceeded")
)
