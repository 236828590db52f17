package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"cryptoshop/internal/entities"
	"cryptoshop/internal/repository"
	"cryptoshop/internal/service/notification"
	"cryptoshop/internal/service/payment"
)

const orderColumns = `
	id, user_id, total::text, status,
	payment_id, payment_status, pay_address, pay_amount::text, pay_currency,
	created_at, updated_at
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	return r.queryOne(ctx, query, orderID)
}

func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE payment_id = $1
	`

	return r.queryOne(ctx, query, paymentID)
}

// AttachPayment привязывает платеж к заказу. Условие payment_id IS NULL
// гарантирует единственную привязку даже при одновременных запросах.
func (r *Repository) AttachPayment(ctx context.Context, orderID string, modify entities.OrderPaymentModify) error {
	paymentID, paymentStatus, payAddress, payAmount, payCurrency := FromDomainModify(&modify)

	query := `
		UPDATE orders
		SET payment_id = $2,
			payment_status = $3,
			pay_address = $4,
			pay_amount = $5::numeric,
			pay_currency = $6,
			updated_at = NOW()
		WHERE id = $1 AND payment_id IS NULL
	`

	result, err := r.querier.Exec(ctx, query, orderID, paymentID, paymentStatus, payAddress, payAmount, payCurrency)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return payment.ErrPaymentExists
		}
		return fmt.Errorf("unexpected order repository attach payment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return payment.ErrPaymentExists
	}
	return nil
}

func (r *Repository) UpdatePaymentStatus(
	ctx context.Context,
	orderID string,
	paymentStatus entities.PaymentStatusType,
	orderStatus entities.OrderStatusType,
) error {
	query := `
		UPDATE orders
		SET payment_status = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, paymentStatus.String(), orderStatus.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update payment status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return payment.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) CreatePaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	query := `
		INSERT INTO payment_events (order_id, payment_id, payment_status, order_status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		event.OrderID,
		event.PaymentID,
		event.PaymentStatus.String(),
		event.OrderStatus.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create payment event error: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := sq.Select(
		"id", "user_id", "total::text", "status",
		"payment_id", "payment_status", "pay_address", "pay_amount::text", "pay_currency",
		"created_at", "updated_at",
	).
		From("orders").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var orderDB OrderDB
		if err := scanOrder(rows, &orderDB); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}

		orderEntity, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

// GetOwnerEmail возвращает email владельца заказа из profiles.
func (r *Repository) GetOwnerEmail(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT email
		FROM profiles
		WHERE user_id = $1
	`

	var email string
	err := r.querier.QueryRow(ctx, query, userID).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notification.ErrRecipientNotFound
		}
		return "", fmt.Errorf("unexpected order repository get owner email error: %w", err)
	}

	return email, nil
}

func (r *Repository) queryOne(ctx context.Context, query string, arg interface{}) (*entities.Order, error) {
	var orderDB OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, arg), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB)
}

func scanOrder(row pgx.Row, orderDB *OrderDB) error {
	return row.Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.Total,
		&orderDB.Status,
		&orderDB.PaymentID,
		&orderDB.PaymentStatus,
		&orderDB.PayAddress,
		&orderDB.PayAmount,
		&orderDB.PayCurrency,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
}
