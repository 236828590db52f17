package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     string
	UserID string
	// Total - авторитетная сумма заказа, только она уходит в платежный шлюз
	Total  decimal.Decimal
	Status OrderStatusType

	// Платежные поля пустые до создания платежа, PaymentID назначается строго один раз
	PaymentID     *string
	PaymentStatus *PaymentStatusType
	PayAddress    *string
	PayAmount     *decimal.Decimal
	PayCurrency   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// PaymentStatusType - сырой статус платежа от процессора. Множество значений
// определяется процессором и не является закрытым enum-ом.
type PaymentStatusType string

const (
	PaymentWaiting    PaymentStatusType = "waiting"
	PaymentConfirming PaymentStatusType = "confirming"
	PaymentConfirmed  PaymentStatusType = "confirmed"
	PaymentSending    PaymentStatusType = "sending"
	PaymentFinished   PaymentStatusType = "finished"
	PaymentFailed     PaymentStatusType = "failed"
	PaymentRefunded   PaymentStatusType = "refunded"
	PaymentExpired    PaymentStatusType = "expired"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// OrderStatus отображает статус платежа в статус заказа.
// Неизвестные статусы процессора трактуются как pending.
func (s PaymentStatusType) OrderStatus() OrderStatusType {
	switch s {
	case PaymentWaiting, PaymentConfirming:
		return OrderPending
	case PaymentConfirmed, PaymentSending, PaymentFinished:
		return OrderProcessing
	case PaymentFailed, PaymentRefunded, PaymentExpired:
		return OrderCancelled
	default:
		return OrderPending
	}
}

// Rank задает порядок продвижения статусов платежа. Webhook с меньшим рангом,
// чем уже сохраненный, считается устаревшей доставкой и не применяется.
// Неизвестным статусам дается ранг 0.
func (s PaymentStatusType) Rank() int {
	switch s {
	case PaymentWaiting:
		return 1
	case PaymentConfirming:
		return 2
	case PaymentConfirmed:
		return 3
	case PaymentSending:
		return 4
	case PaymentFinished, PaymentFailed, PaymentRefunded, PaymentExpired:
		return 5
	default:
		return 0
	}
}

// OrderPaymentModify - поля заказа, заполняемые при создании платежа.
type OrderPaymentModify struct {
	PaymentID     *string
	PaymentStatus *PaymentStatusType
	PayAddress    *string
	PayAmount     *decimal.Decimal
	PayCurrency   *string
}

// OrderFilter - фильтр листинга заказов пользователя.
type OrderFilter struct {
	UserID string
	Status *OrderStatusType
	Limit  uint64
	Offset uint64
}
