package adapter

import "errors"

// Errors mapped from the HTTP status of an API response. The wrapping error
// carries the server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)

var ErrEmptyAddress = errors.New("empty address")
