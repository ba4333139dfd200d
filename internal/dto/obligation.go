package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAllocationRequest is one category split in a request body.
type CategoryAllocationRequest struct {
	CategoryID      string `json:"categoryID" binding:"required"`
	AllocatedAmount int64  `json:"allocatedAmount" binding:"required,gt=0"`
}

// CreateObligationRequest defines the data needed to create a recurring obligation.
// Amounts are integer minor currency units.
type CreateObligationRequest struct {
	Title           string                      `json:"title" binding:"required,max=200"`
	Description     string                      `json:"description"`
	Amount          int64                       `json:"amount" binding:"required,gt=0"`
	Kind            domain.ObligationKind       `json:"kind" binding:"required,oneof=income expense"`
	DayOfMonth      int                         `json:"dayOfMonth" binding:"required,min=1,max=31"`
	DefaultStatus   domain.TransactionStatus    `json:"defaultStatus" binding:"omitempty,oneof=pending paid"` // Defaults to pending
	PaymentMethodID *string                     `json:"paymentMethodID"`
	ActiveFromMonth *string                     `json:"activeFromMonth" binding:"omitempty,month"` // Defaults to the current month
	ActiveToMonth   *string                     `json:"activeToMonth" binding:"omitempty,month"`
	Categories      []CategoryAllocationRequest `json:"categories" binding:"omitempty,dive"`
}

// UpdateObligationRequest defines the fields that may be patched.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateObligationRequest struct {
	Title           *string                      `json:"title" binding:"omitempty,max=200"`
	Description     *string                      `json:"description"`
	Amount          *int64                       `json:"amount" binding:"omitempty,gt=0"`
	Kind            *domain.ObligationKind       `json:"kind" binding:"omitempty,oneof=income expense"`
	DayOfMonth      *int                         `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	DefaultStatus   *domain.TransactionStatus    `json:"defaultStatus" binding:"omitempty,oneof=pending paid"`
	PaymentMethodID *string                      `json:"paymentMethodID"` // Empty string clears it
	ActiveToMonth   *string                      `json:"activeToMonth" binding:"omitempty,month"`
	Categories      *[]CategoryAllocationRequest `json:"categories" binding:"omitempty,dive"`
}

// ListObligationsParams defines query parameters for listing obligations.
type ListObligationsParams struct {
	ActiveIn *string `form:"activeIn" binding:"omitempty,month"`
}

// CategoryAllocationResponse mirrors domain.CategoryAllocation with a display amount.
type CategoryAllocationResponse struct {
	CategoryID      string          `json:"categoryID"`
	AllocatedAmount int64           `json:"allocatedAmount"`
	DisplayAmount   decimal.Decimal `json:"displayAmount"`
}

// ObligationResponse defines the data returned for an obligation version.
type ObligationResponse struct {
	ObligationID    string                       `json:"obligationID"`
	LineageID       string                       `json:"lineageID"`
	SupersedesID    *string                      `json:"supersedesID,omitempty"`
	Title           string                       `json:"title"`
	Description     string                       `json:"description"`
	Amount          int64                        `json:"amount"`
	DisplayAmount   decimal.Decimal              `json:"displayAmount"`
	Kind            domain.ObligationKind        `json:"kind"`
	DayOfMonth      int                          `json:"dayOfMonth"`
	DefaultStatus   domain.TransactionStatus     `json:"defaultStatus"`
	PaymentMethodID *string                      `json:"paymentMethodID,omitempty"`
	ActiveFromMonth string                       `json:"activeFromMonth"`
	ActiveToMonth   *string                      `json:"activeToMonth,omitempty"`
	IsOpen          bool                         `json:"isOpen"`
	Categories      []CategoryAllocationResponse `json:"categories"`
	CreatedAt       time.Time                    `json:"createdAt"`
	CreatedBy       string                       `json:"createdBy"`
	LastUpdatedAt   time.Time                    `json:"lastUpdatedAt"`
	LastUpdatedBy   string                       `json:"lastUpdatedBy"`
}

// ListObligationsResponse wraps a list of obligation versions.
type ListObligationsResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
}

// CloseObligationResponse reports what closing an obligation did.
type CloseObligationResponse struct {
	ObligationID string                `json:"obligationID"`
	Outcome      domain.ClosureOutcome `json:"outcome"`
}

// ToDomainAllocations converts request allocations to a domain set.
func ToDomainAllocations(reqs []CategoryAllocationRequest) domain.AllocationSet {
	if reqs == nil {
		return nil
	}
	set := make(domain.AllocationSet, len(reqs))
	for i, r := range reqs {
		set[i] = domain.CategoryAllocation{CategoryID: r.CategoryID, AllocatedAmount: r.AllocatedAmount}
	}
	return set
}

// ToCategoryAllocationResponses converts a domain set for output. It never returns nil.
func ToCategoryAllocationResponses(set domain.AllocationSet) []CategoryAllocationResponse {
	res := make([]CategoryAllocationResponse, len(set))
	for i, a := range set {
		res[i] = CategoryAllocationResponse{
			CategoryID:      a.CategoryID,
			AllocatedAmount: a.AllocatedAmount,
			DisplayAmount:   MinorToMajor(a.AllocatedAmount),
		}
	}
	return res
}

// ToObligationResponse converts a domain.RecurringObligation to ObligationResponse DTO
func ToObligationResponse(o *domain.RecurringObligation) ObligationResponse {
	res := ObligationResponse{
		ObligationID:    o.ObligationID,
		LineageID:       o.LineageID,
		SupersedesID:    o.SupersedesID,
		Title:           o.Title,
		Description:     o.Description,
		Amount:          o.Amount,
		DisplayAmount:   MinorToMajor(o.Amount),
		Kind:            o.Kind,
		DayOfMonth:      o.DayOfMonth,
		DefaultStatus:   o.DefaultStatus,
		PaymentMethodID: o.PaymentMethodID,
		ActiveFromMonth: o.ActiveFromMonth.String(),
		IsOpen:          o.IsOpen(),
		Categories:      ToCategoryAllocationResponses(o.Allocations),
		CreatedAt:       o.CreatedAt,
		CreatedBy:       o.CreatedBy,
		LastUpdatedAt:   o.LastUpdatedAt,
		LastUpdatedBy:   o.LastUpdatedBy,
	}
	if o.ActiveToMonth != nil {
		to := o.ActiveToMonth.String()
		res.ActiveToMonth = &to
	}
	return res
}

// ToListObligationsResponse converts a slice of domain obligations.
func ToListObligationsResponse(obligations []domain.RecurringObligation) ListObligationsResponse {
	res := make([]ObligationResponse, len(obligations))
	for i := range obligations {
		res[i] = ToObligationResponse(&obligations[i])
	}
	return ListObligationsResponse{Obligations: res}
}
