package models

// RecurringObligation mirrors a row of recurring_obligations. Months are stored as CHAR(7) YYYY-MM.
type RecurringObligation struct {
	ObligationID    string  `db:"obligation_id"`
	OwnerID         string  `db:"owner_id"`
	LineageID       string  `db:"lineage_id"`
	SupersedesID    *string `db:"supersedes_id"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	Amount          int64   `db:"amount"`
	Kind            string  `db:"kind"`
	DayOfMonth      int     `db:"day_of_month"`
	DefaultStatus   string  `db:"default_status"`
	PaymentMethodID *string `db:"payment_method_id"`
	ActiveFromMonth string  `db:"active_from_month"`
	ActiveToMonth   *string `db:"active_to_month"`
	AuditFields
}
