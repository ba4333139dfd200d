package domain

import (
	"sort"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

// CategoryAllocation assigns part of a parent's total amount to one category.
type CategoryAllocation struct {
	CategoryID      string `json:"categoryID"`
	AllocatedAmount int64  `json:"allocatedAmount"` // minor currency units
}

// AllocationSet is the split of a total amount across categories. It is shared by
// recurring obligations (where it may be empty) and transactions (where it may not).
type AllocationSet []CategoryAllocation

// Sum returns the total allocated amount.
func (s AllocationSet) Sum() int64 {
	var total int64
	for _, a := range s {
		total += a.AllocatedAmount
	}
	return total
}

// Validate checks that categories are unique, every amount is positive and, when the
// set is non-empty, that the amounts add up to exactly total.
func (s AllocationSet) Validate(total int64) error {
	seen := make(map[string]struct{}, len(s))
	for _, a := range s {
		if a.CategoryID == "" {
			return apperrors.NewValidationError("allocation category is required")
		}
		if _, dup := seen[a.CategoryID]; dup {
			return apperrors.NewValidationError("category %s is allocated more than once", a.CategoryID)
		}
		seen[a.CategoryID] = struct{}{}
		if a.AllocatedAmount <= 0 {
			return apperrors.NewValidationError("allocation for category %s must be positive, got %d", a.CategoryID, a.AllocatedAmount)
		}
	}
	if len(s) > 0 && s.Sum() != total {
		return apperrors.NewValidationError("allocations sum to %d but total amount is %d", s.Sum(), total)
	}
	return nil
}

// ValidateRequired is Validate plus the requirement of at least one allocation.
func (s AllocationSet) ValidateRequired(total int64) error {
	if len(s) == 0 {
		return apperrors.NewValidationError("at least one category allocation is required")
	}
	return s.Validate(total)
}

// Clone returns an independent copy. A nil set clones to nil.
func (s AllocationSet) Clone() AllocationSet {
	if s == nil {
		return nil
	}
	out := make(AllocationSet, len(s))
	copy(out, s)
	return out
}

// Equal compares two sets ignoring order.
func (s AllocationSet) Equal(o AllocationSet) bool {
	if len(s) != len(o) {
		return false
	}
	a, b := s.sorted(), o.sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s AllocationSet) sorted() AllocationSet {
	out := s.Clone()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].AllocatedAmount < out[j].AllocatedAmount
	})
	return out
}
