package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cryptoshop/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	total, err := decimal.NewFromString(o.Total)
	if err != nil {
		return nil, fmt.Errorf("parse order %s total %q: %w", o.ID, o.Total, err)
	}

	orderEntity := &entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		Total:      total,
		Status:     entities.OrderStatusType(o.Status),
		PaymentID:  o.PaymentID,
		PayAddress: o.PayAddress,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}

	if o.PaymentStatus != nil {
		status := entities.PaymentStatusType(*o.PaymentStatus)
		orderEntity.PaymentStatus = &status
	}
	if o.PayCurrency != nil {
		currency := *o.PayCurrency
		orderEntity.PayCurrency = &currency
	}
	if o.PayAmount != nil {
		payAmount, err := decimal.NewFromString(*o.PayAmount)
		if err != nil {
			return nil, fmt.Errorf("parse order %s pay_amount %q: %w", o.ID, *o.PayAmount, err)
		}
		orderEntity.PayAmount = &payAmount
	}

	return orderEntity, nil
}

// FromDomainModify разворачивает modify-структуру в плоские аргументы запроса.
func FromDomainModify(m *entities.OrderPaymentModify) (paymentID, paymentStatus, payAddress, payAmount, payCurrency *string) {
	if m == nil {
		return nil, nil, nil, nil, nil
	}

	paymentID = m.PaymentID
	payAddress = m.PayAddress
	payCurrency = m.PayCurrency

	if m.PaymentStatus != nil {
		status := m.PaymentStatus.String()
		paymentStatus = &status
	}
	if m.PayAmount != nil {
		amount := m.PayAmount.String()
		payAmount = &amount
	}

	return paymentID, paymentStatus, payAddress, payAmount, payCurrency
}
