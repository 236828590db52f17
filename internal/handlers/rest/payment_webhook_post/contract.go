//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_webhook_post_test
package payment_webhook_post

import (
	"context"

	"cryptoshop/internal/entities"
	"cryptoshop/pkg/fixed_window"
	"cryptoshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessCallback(ctx context.Context, rawBody []byte, signature string) (*entities.PaymentEvent, error)
}

type Publisher interface {
	PublishPaymentStatusChanged(ctx context.Context, event entities.PaymentEvent) error
}

type Limiter interface {
	Check(identifier string, cfg fixed_window.Config) fixed_window.Result
}
