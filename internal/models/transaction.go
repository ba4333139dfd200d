package models

import "time"

// Transaction mirrors a row of transactions.
type Transaction struct {
	TransactionID      string     `db:"transaction_id"`
	OwnerID            string     `db:"owner_id"`
	Kind               string     `db:"kind"`
	Description        string     `db:"description"`
	Notes              string     `db:"notes"`
	Amount             int64      `db:"amount"`
	Status             string     `db:"status"`
	OccurredOn         time.Time  `db:"occurred_on"`
	OccurredMonth      string     `db:"occurred_month"`
	DueOn              *time.Time `db:"due_on"`
	PaidOn             *time.Time `db:"paid_on"`
	PaymentMethodID    *string    `db:"payment_method_id"`
	SourceObligationID *string    `db:"source_obligation_id"`
	AuditFields
}
