package request

import "errors"

var (
	ErrInvalidMethod  = errors.New("invalid HTTP method")
	ErrInvalidVersion = errors.New("invalid HTTP version")
	ErrTruncatedInput = errors.New("truncated request")
)
