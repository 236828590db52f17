package order

import "time"

// OrderDB - строка таблицы orders. Денежные колонки numeric читаются как text
// и конвертируются в decimal без прохода через float.
type OrderDB struct {
	ID            string
	UserID        string
	Total         string
	Status        string
	PaymentID     *string
	PaymentStatus *string
	PayAddress    *string
	PayAmount     *string
	PayCurrency   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
