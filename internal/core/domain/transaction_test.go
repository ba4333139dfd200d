package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratedTransaction(t *testing.T) {
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	o := validObligation()
	o.PaymentMethodID = stringPtr("card-1")
	o.Description = "Flat 4B"

	txn := domain.NewGeneratedTransaction("txn-1", o, domain.MustMonth(2025, 2), now)

	assert.Equal(t, "txn-1", txn.TransactionID)
	assert.Equal(t, o.OwnerID, txn.OwnerID)
	assert.Equal(t, int64(150000), txn.Amount)
	assert.Equal(t, "2025-02-05", txn.OccurredOn.Format(time.DateOnly))
	assert.Equal(t, domain.MustMonth(2025, 2), txn.OccurredMonth)
	assert.Equal(t, domain.StatusPending, txn.Status)
	assert.Equal(t, "Rent", txn.Description)
	assert.Equal(t, "Flat 4B", txn.Notes)
	require.NotNil(t, txn.SourceObligationID)
	assert.Equal(t, o.ObligationID, *txn.SourceObligationID)
	assert.True(t, txn.IsGenerated())
	assert.Empty(t, txn.Allocations)
	require.NotNil(t, txn.DueOn)
	assert.Nil(t, txn.PaidOn)
	assert.Equal(t, now, txn.CreatedAt)
	assert.NoError(t, txn.Validate())

	// The payment method must be a copy.
	*o.PaymentMethodID = "card-2"
	assert.Equal(t, "card-1", *txn.PaymentMethodID)
}

func TestTransaction_StampSettlement(t *testing.T) {
	on := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	paid := domain.Transaction{Status: domain.StatusPaid, OccurredOn: on}
	paid.StampSettlement()
	require.NotNil(t, paid.PaidOn)
	assert.Equal(t, on, *paid.PaidOn)
	assert.Nil(t, paid.DueOn)

	pending := domain.Transaction{Status: domain.StatusPending, OccurredOn: on}
	pending.StampSettlement()
	require.NotNil(t, pending.DueOn)
	assert.Nil(t, pending.PaidOn)
}

func TestTransaction_Validate(t *testing.T) {
	on := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	base := func() domain.Transaction {
		return domain.Transaction{
			TransactionID: "t1",
			Kind:          domain.KindExpense,
			Amount:        1000,
			Status:        domain.StatusPaid,
			OccurredOn:    on,
			OccurredMonth: domain.MonthOf(on),
			Allocations:   domain.AllocationSet{{CategoryID: "food", AllocatedAmount: 1000}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(t *domain.Transaction)
		wantErr bool
	}{
		{name: "valid ad-hoc", mutate: func(t *domain.Transaction) {}},
		{name: "ad-hoc without categories", mutate: func(t *domain.Transaction) { t.Allocations = nil }, wantErr: true},
		{
			name: "generated without categories",
			mutate: func(t *domain.Transaction) {
				t.Allocations = nil
				t.SourceObligationID = stringPtr("obl-1")
			},
		},
		{name: "month mismatch", mutate: func(t *domain.Transaction) { t.OccurredMonth = domain.MustMonth(2025, 4) }, wantErr: true},
		{name: "non positive amount", mutate: func(t *domain.Transaction) { t.Amount = 0 }, wantErr: true},
		{name: "allocation mismatch", mutate: func(t *domain.Transaction) { t.Amount = 1001 }, wantErr: true},
		{name: "unknown status", mutate: func(t *domain.Transaction) { t.Status = "cleared" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := base()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
