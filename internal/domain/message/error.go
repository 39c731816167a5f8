package message

import "errors"

var (
	ErrNotFound     = errors.New("message not found")
	ErrEmptyContent = errors.New("message content is empty")
)
