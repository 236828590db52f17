//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"cryptoshop/internal/entities"
	"cryptoshop/pkg/fixed_window"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetOwnerEmail(ctx context.Context, userID string) (string, error)
}

type Sender interface {
	SendEmail(ctx context.Context, email entities.OrderStatusEmail) error
}

type Limiter interface {
	Check(identifier string, cfg fixed_window.Config) fixed_window.Result
}

type MessageFactory interface {
	Compose(orderID string, status entities.OrderStatusType) entities.StatusMessage
}
