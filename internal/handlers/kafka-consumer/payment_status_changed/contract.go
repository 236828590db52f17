package payment_status_changed

import (
	"context"

	"cryptoshop/internal/entities"
	"cryptoshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	HandlePaymentStatusChanged(ctx context.Context, event entities.PaymentEvent) error
}
