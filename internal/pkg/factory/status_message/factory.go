package status_message

import (
	"fmt"

	"cryptoshop/internal/entities"
)

// StatusMessageFactory подбирает тему и текст письма под статус заказа.
type StatusMessageFactory struct{}

func New() *StatusMessageFactory {
	return &StatusMessageFactory{}
}

func (f *StatusMessageFactory) Compose(orderID string, status entities.OrderStatusType) entities.StatusMessage {
	shortID := orderID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	switch status {
	case entities.OrderProcessing:
		return entities.StatusMessage{
			Subject: fmt.Sprintf("Order #%s is being processed", shortID),
			Message: "Great news! Your payment has been confirmed and your order is now being processed.",
		}
	case entities.OrderShipped:
		return entities.StatusMessage{
			Subject: fmt.Sprintf("Order #%s has been shipped", shortID),
			Message: "Your order is on its way! You will receive tracking information shortly.",
		}
	case entities.OrderDelivered:
		return entities.StatusMessage{
			Subject: fmt.Sprintf("Order #%s has been delivered", shortID),
			Message: "Your order has been delivered. Thank you for shopping with us!",
		}
	case entities.OrderCancelled:
		return entities.StatusMessage{
			Subject: fmt.Sprintf("Order #%s has been cancelled", shortID),
			Message: "Your order has been cancelled. If you did not request this, please contact support.",
		}
	default:
		return entities.StatusMessage{
			Subject: fmt.Sprintf("Order #%s status update", shortID),
			Message: fmt.Sprintf("Your order status has been updated to: %s.", status),
		}
	}
}
