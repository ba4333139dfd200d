package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListObligations_FiltersByActiveMonth(t *testing.T) {
	store := newMemStore()
	service := services.NewObligationReaderService(store, testOptions()...)
	ctx := context.Background()

	closed := rentObligation("obl-old")
	end := domain.MustMonth(2025, 2)
	closed.ActiveToMonth = &end
	store.seedObligation(closed)
	future := rentObligation("obl-future")
	future.ActiveFromMonth = domain.MustMonth(2025, 6)
	store.seedObligation(future)
	store.seedObligation(rentObligation("obl-open"))

	all, err := service.ListObligations(ctx, ownerA, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	march := "2025-03"
	active, err := service.ListObligations(ctx, ownerA, &march)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "obl-open", active[0].ObligationID)

	bad := "March"
	_, err = service.ListObligations(ctx, ownerA, &bad)
	assert.ErrorIs(t, err, apperrors.ErrFormat)
}

func TestGetObligation_RepositoryError(t *testing.T) {
	repo := new(MockObligationRepository)
	service := services.NewObligationReaderService(repo)
	ctx := context.Background()

	repo.On("FindObligation", ctx, "obl-1", ownerA).Return(nil, assert.AnError).Once()

	obligation, err := service.GetObligation(ctx, "obl-1", ownerA)

	assert.Nil(t, obligation)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

func TestGetObligationHistory_UsesLineage(t *testing.T) {
	repo := new(MockObligationRepository)
	service := services.NewObligationReaderService(repo)
	ctx := context.Background()

	current := rentObligation("obl-2")
	current.LineageID = "obl-1"
	history := []domain.RecurringObligation{rentObligation("obl-1"), current}

	repo.On("FindObligation", ctx, "obl-2", ownerA).Return(&current, nil).Once()
	repo.On("ListObligationLineage", ctx, "obl-1", ownerA).Return(history, nil).Once()

	got, err := service.GetObligationHistory(ctx, "obl-2", ownerA)

	require.NoError(t, err)
	assert.Equal(t, history, got)
	repo.AssertExpectations(t)
}
