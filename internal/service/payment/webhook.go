package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"cryptoshop/internal/entities"
)

// callbackPayload - подмножество полей IPN-уведомления процессора.
// payment_id приходит то числом, то строкой, поэтому json.Number.
type callbackPayload struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	OrderID       string      `json:"order_id"`
}

// ProcessCallback проверяет подпись webhook-а и применяет смену статуса.
// Возвращает примененное событие; nil без ошибки означает, что уведомление
// подтверждено, но ничего не изменило (повтор или устаревшая доставка).
func (p *Payment) ProcessCallback(ctx context.Context, rawBody []byte, signature string) (*entities.PaymentEvent, error) {
	if p.ipnSecret == "" {
		return nil, ErrNotConfigured
	}
	if signature == "" {
		return nil, ErrMissingSignature
	}

	if err := p.verifySignature(rawBody, signature); err != nil {
		return nil, err
	}

	var payload callbackPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	if !isValidUUID(payload.OrderID) {
		return nil, fmt.Errorf("%w: bad order_id", ErrInvalidPayload)
	}
	if payload.PaymentStatus == "" {
		return nil, fmt.Errorf("%w: empty payment_status", ErrInvalidPayload)
	}

	newStatus := entities.PaymentStatusType(payload.PaymentStatus)
	event := entities.PaymentEvent{
		OrderID:       payload.OrderID,
		PaymentID:     payload.PaymentID.String(),
		PaymentStatus: newStatus,
		OrderStatus:   newStatus.OrderStatus(),
	}

	applied := false
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := p.repository.GetByID(ctx, payload.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.PaymentID != nil && *order.PaymentID != event.PaymentID {
			return fmt.Errorf("%w: payment_id does not match order", ErrInvalidPayload)
		}

		if order.PaymentStatus != nil {
			current := *order.PaymentStatus
			// повтор того же статуса и доставка отставшего уведомления
			// подтверждаются без записи, иначе процессор будет слать ретраи
			if newStatus == current || newStatus.Rank() < current.Rank() {
				return nil
			}
		}

		if err := p.repository.UpdatePaymentStatus(ctx, order.ID, newStatus, event.OrderStatus); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		if err := p.repository.CreatePaymentEvent(ctx, event); err != nil {
			return fmt.Errorf("create payment event: %w", err)
		}

		applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		return nil, nil
	}
	return &event, nil
}

// verifySignature считает HMAC-SHA512 от тела с лексикографически
// отсортированными ключами, как того требует процессор. json.Marshal для map
// сортирует ключи сам, а json.Number сохраняет исходную запись чисел.
func (p *Payment) verifySignature(rawBody []byte, signature string) error {
	var params map[string]interface{}

	decoder := json.NewDecoder(bytes.NewReader(rawBody))
	decoder.UseNumber()
	if err := decoder.Decode(&params); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	// без HTML-эскейпинга, чтобы байты совпали с тем, что подписывал процессор
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(params); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	sorted := bytes.TrimRight(buf.Bytes(), "\n")

	mac := hmac.New(sha512.New, []byte(p.ipnSecret))
	mac.Write(sorted)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
