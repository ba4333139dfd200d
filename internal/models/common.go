package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// CategoryAllocation is one row of an allocation child table.
type CategoryAllocation struct {
	ParentID        string `db:"parent_id"` // obligation_id or transaction_id
	CategoryID      string `db:"category_id"`
	AllocatedAmount int64  `db:"allocated_amount"`
}
