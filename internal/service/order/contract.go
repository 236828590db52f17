//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"cryptoshop/internal/entities"
)

type Repository interface {
	ListByUser(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}
