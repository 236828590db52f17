package order

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidStatus = errors.New("invalid order status filter")
)
