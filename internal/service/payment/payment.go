package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"cryptoshop/internal/entities"
)

type Payment struct {
	repository Repository
	gateway    Gateway
	txManager  TxManager
	ipnSecret  string
}

func New(
	repository Repository,
	gateway Gateway,
	txManager TxManager,
	ipnSecret string,
) *Payment {
	return &Payment{
		repository: repository,
		gateway:    gateway,
		txManager:  txManager,
		ipnSecret:  ipnSecret,
	}
}

// CreatePayment регистрирует платеж для заказа. Клиентская сумма только
// сверяется с заказом, в процессор уходит сумма из базы.
func (p *Payment) CreatePayment(
	ctx context.Context,
	userID string,
	orderID string,
	amount decimal.Decimal,
	currency string,
) (*entities.PaymentIntent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthorized
	}
	if !isValidUUID(orderID) {
		return nil, ErrInvalidOrderID
	}

	currency = normalizeCurrency(currency)
	if !isSupportedCurrency(currency) {
		return nil, fmt.Errorf("%w: %q, supported: %s",
			ErrUnsupportedCurrency, currency, strings.Join(supportedCurrencies, ", "))
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	order, err := p.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.PaymentID != nil {
		return nil, ErrPaymentExists
	}
	if order.Status != entities.OrderPending {
		return nil, ErrNotAwaitingPayment
	}
	if !amountMatchesTotal(amount, order.Total) {
		return nil, ErrAmountMismatch
	}

	intent, err := p.gateway.CreatePayment(ctx, entities.CreatePaymentRequest{
		OrderID:     order.ID,
		Amount:      order.Total,
		PayCurrency: currency,
		Description: fmt.Sprintf("Order %s", order.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("create payment in gateway: %w", err)
	}

	modify := entities.OrderPaymentModify{
		PaymentID:     pointer.To(intent.PaymentID),
		PaymentStatus: pointer.To(intent.PaymentStatus),
		PayAddress:    pointer.To(intent.PayAddress),
		PayAmount:     pointer.To(intent.PayAmount),
		PayCurrency:   pointer.To(intent.PayCurrency),
	}

	// условная запись отсекает второй платеж, созданный параллельным запросом
	if err := p.repository.AttachPayment(ctx, order.ID, modify); err != nil {
		return nil, fmt.Errorf("attach payment to order: %w", err)
	}

	return intent, nil
}

// CheckStatus читает состояние платежа из процессора, ничего не меняя:
// единственный источник переходов статуса - подписанный webhook.
func (p *Payment) CheckStatus(ctx context.Context, userID, paymentID string) (*entities.PaymentStatusCheck, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(paymentID) == "" {
		return nil, ErrInvalidPaymentID
	}

	order, err := p.repository.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get order by payment: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrForbidden
	}

	check, err := p.gateway.PaymentStatus(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment status from gateway: %w", err)
	}

	return check, nil
}
