package notification

import (
	"context"
	"fmt"

	"cryptoshop/internal/entities"
	"cryptoshop/pkg/fixed_window"
)

type Notification struct {
	repository Repository
	sender     Sender
	limiter    Limiter
	messages   MessageFactory
}

func New(
	repository Repository,
	sender Sender,
	limiter Limiter,
	messages MessageFactory,
) *Notification {
	return &Notification{
		repository: repository,
		sender:     sender,
		limiter:    limiter,
		messages:   messages,
	}
}

// HandlePaymentStatusChanged отправляет покупателю письмо о завершенной
// оплате. Письмо уходит только на finished: промежуточные статусы покупателю
// не интересны, а терминальные отказы разбирает поддержка.
func (n *Notification) HandlePaymentStatusChanged(ctx context.Context, event entities.PaymentEvent) error {
	if event.PaymentStatus != entities.PaymentFinished {
		return nil
	}

	order, err := n.repository.GetByID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	email, err := n.repository.GetOwnerEmail(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("get owner email: %w", err)
	}

	if result := n.limiter.Check(email, fixed_window.SendEmail); !result.Allowed {
		return fmt.Errorf("%w: %s, retry after %ds", ErrRateLimited, email, result.RetryAfter)
	}

	message := n.messages.Compose(order.ID, order.Status)

	err = n.sender.SendEmail(ctx, entities.OrderStatusEmail{
		To:         email,
		Subject:    message.Subject,
		Message:    message.Message,
		OrderID:    order.ID,
		OrderTotal: order.Total,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
