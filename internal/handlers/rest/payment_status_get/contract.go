//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_get_test
package payment_status_get

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
	CheckStatus(ctx context.Context, userID, paymentID string) (*entities.PaymentStatusCheck, error)
}

type Limiter interface {
	Check(identifier string, cfg fixed_window.Config) fixed_window.Result
}
