package notification

import "errors"

var (
	ErrRecipientNotFound = errors.New("recipient email not found")
	ErrRateLimited       = errors.New("recipient rate limited")
)
