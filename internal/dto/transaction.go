package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record an ad-hoc transaction.
type CreateTransactionRequest struct {
	Kind            domain.ObligationKind       `json:"kind" binding:"required,oneof=income expense"`
	Description     string                      `json:"description" binding:"required,max=200"`
	Notes           string                      `json:"notes"`
	Amount          int64                       `json:"amount" binding:"required,gt=0"`
	Status          domain.TransactionStatus    `json:"status" binding:"omitempty,oneof=pending paid"` // Defaults to paid
	OccurredOn      string                      `json:"occurredOn" binding:"required,datetime=2006-01-02"`
	PaymentMethodID *string                     `json:"paymentMethodID"`
	Categories      []CategoryAllocationRequest `json:"categories" binding:"required,min=1,dive"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Month string `form:"month" binding:"required,month"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string                       `json:"transactionID"`
	Kind               domain.ObligationKind        `json:"kind"`
	Description        string                       `json:"description"`
	Notes              string                       `json:"notes"`
	Amount             int64                        `json:"amount"`
	DisplayAmount      decimal.Decimal              `json:"displayAmount"`
	Status             domain.TransactionStatus     `json:"status"`
	OccurredOn         string                       `json:"occurredOn"`
	OccurredMonth      string                       `json:"occurredMonth"`
	DueOn              *string                      `json:"dueOn,omitempty"`
	PaidOn             *string                      `json:"paidOn,omitempty"`
	PaymentMethodID    *string                      `json:"paymentMethodID,omitempty"`
	SourceObligationID *string                      `json:"sourceObligationID,omitempty"`
	Categories         []CategoryAllocationResponse `json:"categories"`
	CreatedAt          time.Time                    `json:"createdAt"`
	CreatedBy          string                       `json:"createdBy"`
}

// ListTransactionsResponse wraps the transactions of one month.
type ListTransactionsResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      t.TransactionID,
		Kind:               t.Kind,
		Description:        t.Description,
		Notes:              t.Notes,
		Amount:             t.Amount,
		DisplayAmount:      MinorToMajor(t.Amount),
		Status:             t.Status,
		OccurredOn:         t.OccurredOn.Format(time.DateOnly),
		OccurredMonth:      t.OccurredMonth.String(),
		DueOn:              formatDatePtr(t.DueOn),
		PaidOn:             formatDatePtr(t.PaidOn),
		PaymentMethodID:    t.PaymentMethodID,
		SourceObligationID: t.SourceObligationID,
		Categories:         ToCategoryAllocationResponses(t.Allocations),
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
	}
}

// ToListTransactionsResponse converts the transactions of month for output.
func ToListTransactionsResponse(month string, txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Month: month, Transactions: res}
}
