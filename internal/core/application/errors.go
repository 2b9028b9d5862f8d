package application

import "errors"

var (
	ErrRequestCancelled      = errors.New("request cancelled")
	ErrInternal              = errors.New("internal error")
	ErrInvalidMaxConcurrency = errors.New("max concurrency must be a positive number")
	ErrInvalidRequestTimeout = errors.New("request timeout must not be negative")
)
