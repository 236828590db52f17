//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"cryptoshop/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*entities.Order, error)
	AttachPayment(ctx context.Context, orderID string, modify entities.OrderPaymentModify) error
	UpdatePaymentStatus(ctx context.Context, orderID string, paymentStatus entities.PaymentStatusType, orderStatus entities.OrderStatusType) error
	CreatePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type Gateway interface {
	CreatePayment(ctx context.Context, req entities.CreatePaymentRequest) (*entities.PaymentIntent, error)
	PaymentStatus(ctx context.Context, paymentID string) (*entities.PaymentStatusCheck, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
