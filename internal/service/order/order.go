package order

import (
	"context"
	"fmt"
	"strings"

	"cryptoshop/internal/entities"
)

const defaultLimit = 50

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// ListOrders возвращает заказы вызывающего пользователя, новые первыми.
func (s *Service) ListOrders(ctx context.Context, userID string, status *string, limit, offset uint64) ([]entities.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthorized
	}

	filter := entities.OrderFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultLimit
	}

	if status != nil {
		statusType, err := parseStatus(*status)
		if err != nil {
			return nil, err
		}
		filter.Status = &statusType
	}

	orders, err := s.repository.ListByUser(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func parseStatus(status string) (entities.OrderStatusType, error) {
	switch entities.OrderStatusType(status) {
	case entities.OrderPending, entities.OrderProcessing, entities.OrderShipped,
		entities.OrderDelivered, entities.OrderCancelled:
		return entities.OrderStatusType(status), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}
