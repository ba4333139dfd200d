package domain

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

// Transaction is a concrete money movement in a given month. Transactions created by
// monthly generation carry the id of the obligation version that produced them.
type Transaction struct {
	TransactionID      string            `json:"transactionID"`
	OwnerID            string            `json:"ownerID"`
	Kind               ObligationKind    `json:"kind"`
	Description        string            `json:"description"`
	Notes              string            `json:"notes"`
	Amount             int64             `json:"amount"` // minor currency units
	Status             TransactionStatus `json:"status"`
	OccurredOn         time.Time         `json:"occurredOn"`
	OccurredMonth      Month             `json:"occurredMonth"`
	DueOn              *time.Time        `json:"dueOn,omitempty"`
	PaidOn             *time.Time        `json:"paidOn,omitempty"`
	PaymentMethodID    *string           `json:"paymentMethodID,omitempty"`
	SourceObligationID *string           `json:"sourceObligationID,omitempty"` // Nullable; set only on generated transactions
	Allocations        AllocationSet     `json:"allocations"`
	AuditFields
}

// IsGenerated reports whether the transaction was materialized from an obligation.
func (t Transaction) IsGenerated() bool {
	return t.SourceObligationID != nil
}

// Validate checks the transaction invariants. Ad-hoc transactions need at least one
// allocation; generated ones inherit whatever their obligation carried.
func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return apperrors.NewValidationError("amount must be positive, got %d", t.Amount)
	}
	if !t.Kind.IsValid() {
		return apperrors.NewValidationError("unknown kind %q", t.Kind)
	}
	if !t.Status.IsValid() {
		return apperrors.NewValidationError("unknown status %q", t.Status)
	}
	if t.OccurredOn.IsZero() {
		return apperrors.NewValidationError("occurred on date is required")
	}
	if !MonthOf(t.OccurredOn).Equal(t.OccurredMonth) {
		return apperrors.NewValidationError("occurred on %s is outside month %s", t.OccurredOn.Format(time.DateOnly), t.OccurredMonth)
	}
	if t.IsGenerated() {
		return t.Allocations.Validate(t.Amount)
	}
	return t.Allocations.ValidateRequired(t.Amount)
}

// StampSettlement sets DueOn or PaidOn from the status. Pending transactions are due
// on their occurrence date; paid ones were paid on it.
func (t *Transaction) StampSettlement() {
	on := t.OccurredOn
	switch t.Status {
	case StatusPaid:
		t.PaidOn = &on
		t.DueOn = nil
	default:
		t.DueOn = &on
		t.PaidOn = nil
	}
}

// NewGeneratedTransaction materializes o for month m. Allocations are copied verbatim.
func NewGeneratedTransaction(transactionID string, o RecurringObligation, m Month, now time.Time) Transaction {
	sourceID := o.ObligationID
	var paymentMethodID *string
	if o.PaymentMethodID != nil {
		pm := *o.PaymentMethodID
		paymentMethodID = &pm
	}
	txn := Transaction{
		TransactionID:      transactionID,
		OwnerID:            o.OwnerID,
		Kind:               o.Kind,
		Description:        o.Title,
		Notes:              o.Description,
		Amount:             o.Amount,
		Status:             o.DefaultStatus,
		OccurredOn:         o.OccurrenceDate(m),
		OccurredMonth:      m,
		PaymentMethodID:    paymentMethodID,
		SourceObligationID: &sourceID,
		Allocations:        o.Allocations.Clone(),
		AuditFields:        NewAuditFields(o.OwnerID, now),
	}
	txn.StampSettlement()
	return txn
}
