package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

// ObligationKind says whether money comes in or goes out.
type ObligationKind string

const (
	KindIncome  ObligationKind = "income"
	KindExpense ObligationKind = "expense"
)

func (k ObligationKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// TransactionStatus is the settlement state stamped onto a transaction.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusPaid    TransactionStatus = "paid"
)

func (s TransactionStatus) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
	MaxTitleLen   = 200
)

// RecurringObligation is one version of a recurring income or expense rule.
// A version is Open while ActiveToMonth is nil and Closed once it is set.
// Versions of the same rule share a LineageID; SupersedesID points at the
// version this one replaced.
type RecurringObligation struct {
	ObligationID    string            `json:"obligationID"`
	OwnerID         string            `json:"ownerID"`
	LineageID       string            `json:"lineageID"`
	SupersedesID    *string           `json:"supersedesID,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Amount          int64             `json:"amount"` // minor currency units
	Kind            ObligationKind    `json:"kind"`
	DayOfMonth      int               `json:"dayOfMonth"`
	DefaultStatus   TransactionStatus `json:"defaultStatus"`
	PaymentMethodID *string           `json:"paymentMethodID,omitempty"`
	ActiveFromMonth Month             `json:"activeFromMonth"`
	ActiveToMonth   *Month            `json:"activeToMonth,omitempty"`
	Allocations     AllocationSet     `json:"allocations"`
	AuditFields
}

// IsOpen reports whether the version is still generating with no end month.
func (o RecurringObligation) IsOpen() bool {
	return o.ActiveToMonth == nil
}

// IsActiveIn reports whether m falls inside the version's validity window.
func (o RecurringObligation) IsActiveIn(m Month) bool {
	if m.Before(o.ActiveFromMonth) {
		return false
	}
	return o.ActiveToMonth == nil || !m.After(*o.ActiveToMonth)
}

// OccurrenceDate is the calendar date the obligation falls on in m. Days past the
// end of a short month land on its last day.
func (o RecurringObligation) OccurrenceDate(m Month) time.Time {
	return m.Date(o.DayOfMonth)
}

// Validate checks the entity invariants, including its allocation set.
func (o RecurringObligation) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if len(o.Title) > MaxTitleLen {
		return apperrors.NewValidationError("title too long (max %d characters)", MaxTitleLen)
	}
	if o.Amount <= 0 {
		return apperrors.NewValidationError("amount must be positive, got %d", o.Amount)
	}
	if !o.Kind.IsValid() {
		return apperrors.NewValidationError("unknown kind %q", o.Kind)
	}
	if o.DayOfMonth < MinDayOfMonth || o.DayOfMonth > MaxDayOfMonth {
		return apperrors.NewValidationError("day of month must be between %d and %d, got %d", MinDayOfMonth, MaxDayOfMonth, o.DayOfMonth)
	}
	if !o.DefaultStatus.IsValid() {
		return apperrors.NewValidationError("unknown status %q", o.DefaultStatus)
	}
	if o.ActiveFromMonth.IsZero() {
		return apperrors.NewValidationError("active from month is required")
	}
	if o.ActiveToMonth != nil && o.ActiveToMonth.Before(o.ActiveFromMonth) {
		return apperrors.NewValidationError("active to month %s precedes active from month %s", o.ActiveToMonth, o.ActiveFromMonth)
	}
	return o.Allocations.Validate(o.Amount)
}

// ObligationPatch is a partial update. Nil fields are left untouched.
type ObligationPatch struct {
	Title           *string
	Description     *string
	Amount          *int64
	Kind            *ObligationKind
	DayOfMonth      *int
	DefaultStatus   *TransactionStatus
	PaymentMethodID *string // empty string clears the reference
	Categories      *AllocationSet
	ActiveToMonth   *Month
}

// EffectiveAmount is the amount the obligation will have once the patch is applied.
func (p ObligationPatch) EffectiveAmount(o RecurringObligation) int64 {
	if p.Amount != nil {
		return *p.Amount
	}
	return o.Amount
}

// HasSemanticChanges reports whether the patch changes any field that affects what
// gets generated. Fields carried with their current value do not count.
func (p ObligationPatch) HasSemanticChanges(o RecurringObligation) bool {
	switch {
	case p.Title != nil && *p.Title != o.Title:
		return true
	case p.Description != nil && *p.Description != o.Description:
		return true
	case p.Amount != nil && *p.Amount != o.Amount:
		return true
	case p.Kind != nil && *p.Kind != o.Kind:
		return true
	case p.DayOfMonth != nil && *p.DayOfMonth != o.DayOfMonth:
		return true
	case p.DefaultStatus != nil && *p.DefaultStatus != o.DefaultStatus:
		return true
	case p.PaymentMethodID != nil && *p.PaymentMethodID != stringValue(o.PaymentMethodID):
		return true
	case p.Categories != nil && !p.Categories.Equal(o.Allocations):
		return true
	}
	return false
}

// Apply returns a copy of o with the patch's fields written over it. Window fields
// are left to the caller, which decides between in-place edits and new versions.
func (p ObligationPatch) Apply(o RecurringObligation) RecurringObligation {
	out := o
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.Kind != nil {
		out.Kind = *p.Kind
	}
	if p.DayOfMonth != nil {
		out.DayOfMonth = *p.DayOfMonth
	}
	if p.DefaultStatus != nil {
		out.DefaultStatus = *p.DefaultStatus
	}
	if p.PaymentMethodID != nil {
		if *p.PaymentMethodID == "" {
			out.PaymentMethodID = nil
		} else {
			id := *p.PaymentMethodID
			out.PaymentMethodID = &id
		}
	}
	if p.Categories != nil {
		out.Allocations = p.Categories.Clone()
	} else {
		out.Allocations = o.Allocations.Clone()
	}
	return out
}

// ClosureOutcome says what closing an obligation did.
type ClosureOutcome string

const (
	ClosureClosed  ClosureOutcome = "closed"
	ClosureDeleted ClosureOutcome = "deleted"
)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
