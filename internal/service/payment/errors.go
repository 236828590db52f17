package payment

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("order belongs to another user")

	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidPaymentID    = errors.New("invalid payment id")
	ErrUnsupportedCurrency = errors.New("unsupported pay currency")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAmountMismatch      = errors.New("amount does not match order total")

	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentExists      = errors.New("order already has a payment")
	ErrNotAwaitingPayment = errors.New("order is not awaiting payment")

	ErrNotConfigured    = errors.New("webhook secret not configured")
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
)
