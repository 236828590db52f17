package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"cryptoshop/internal/entities"
)

// Publisher пишет события об изменении статуса платежа в Kafka.
// Ключ сообщения - order_id, так все события одного заказа попадают
// в одну партицию и читаются по порядку.
type Publisher struct {
	producer syncProducer
	topic    string
}

func New(producer syncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

type paymentStatusChangedMessage struct {
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
}

func (p *Publisher) PublishPaymentStatusChanged(_ context.Context, event entities.PaymentEvent) error {
	payload, err := json.Marshal(paymentStatusChangedMessage{
		OrderID:       event.OrderID,
		PaymentID:     event.PaymentID,
		PaymentStatus: event.PaymentStatus.String(),
		OrderStatus:   event.OrderStatus.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal payment status changed event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish payment status changed for order %s: %w", event.OrderID, err)
	}
	return nil
}
