//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_create_post_test
package payment_create_post

import (
	"context"

	"github.com/shopspring/decimal"

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
	CreatePayment(ctx context.Context, userID, orderID string, amount decimal.Decimal, currency string) (*entities.PaymentIntent, error)
}

type Limiter interface {
	Check(identifier string, cfg fixed_window.Config) fixed_window.Result
}
