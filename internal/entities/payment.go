package entities

import "github.com/shopspring/decimal"

// CreatePaymentRequest - запрос на создание платежа в процессоре.
// Amount всегда берется из заказа, а не из клиентского ввода.
type CreatePaymentRequest struct {
	OrderID     string
	Amount      decimal.Decimal
	PayCurrency string
	Description string
}

// PaymentIntent - созданный платеж: адрес и сумма для перевода.
type PaymentIntent struct {
	PaymentID     string
	PayAddress    string
	PayAmount     decimal.Decimal
	PayCurrency   string
	PaymentStatus PaymentStatusType
}

// PaymentStatusCheck - снимок состояния платежа по данным процессора.
type PaymentStatusCheck struct {
	PaymentID     string
	PaymentStatus PaymentStatusType
	PayAmount     decimal.Decimal
	ActuallyPaid  decimal.Decimal
	PayCurrency   string
}

// PaymentEvent - примененное изменение статуса платежа.
// Публикуется в payment.status.changed и пишется в аудит.
type PaymentEvent struct {
	OrderID       string
	PaymentID     string
	PaymentStatus PaymentStatusType
	OrderStatus   OrderStatusType
}

// OrderStatusEmail - письмо покупателю об изменении статуса заказа.
type OrderStatusEmail struct {
	To         string
	Subject    string
	Message    string
	OrderID    string
	OrderTotal decimal.Decimal
}

// StatusMessage - шаблон темы и текста письма для статуса заказа.
type StatusMessage struct {
	Subject string
	Message string
}
