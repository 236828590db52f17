package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"cryptoshop/internal/entities"
	"cryptoshop/internal/service/notification"
	"cryptoshop/pkg/logger"
)

type statusChangedEvent struct {
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
}

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("payment_status", event.PaymentStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	paymentEvent := entities.PaymentEvent{
		OrderID:       event.OrderID,
		PaymentID:     event.PaymentID,
		PaymentStatus: entities.PaymentStatusType(event.PaymentStatus),
		OrderStatus:   entities.OrderStatusType(event.OrderStatus),
	}

	err = h.notificationService.HandlePaymentStatusChanged(ctx, paymentEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrRecipientNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler recipient email not found")

		case errors.Is(err, notification.ErrRateLimited):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler recipient rate limited, email skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
