package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
)

// --- In-memory store ---

type txMarker struct{}

// memStore is an in-memory stand-in for the pgsql repositories. RunInTx snapshots the
// state and restores it when fn fails, so rollbacks behave like the real store.
type memStore struct {
	mu           sync.Mutex
	obligations  map[string]domain.RecurringObligation
	allocations  map[string]domain.AllocationSet
	transactions map[string]domain.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		obligations:  map[string]domain.RecurringObligation{},
		allocations:  map[string]domain.AllocationSet{},
		transactions: map[string]domain.Transaction{},
	}
}

var (
	_ portsrepo.ObligationRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*memStore)(nil)
	_ portsrepo.TransactionManager          = (*memStore)(nil)
)

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{ObligationRepo: s, TransactionRepo: s, TxManager: s}
}

func (s *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	obligations := make(map[string]domain.RecurringObligation, len(s.obligations))
	for k, v := range s.obligations {
		obligations[k] = v
	}
	allocations := make(map[string]domain.AllocationSet, len(s.allocations))
	for k, v := range s.allocations {
		allocations[k] = v.Clone()
	}
	transactions := make(map[string]domain.Transaction, len(s.transactions))
	for k, v := range s.transactions {
		transactions[k] = v
	}
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		s.mu.Lock()
		s.obligations, s.allocations, s.transactions = obligations, allocations, transactions
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) withAllocations(o domain.RecurringObligation) domain.RecurringObligation {
	o.Allocations = s.allocations[o.ObligationID].Clone()
	return o
}

func sortByActiveFrom(list []domain.RecurringObligation) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := list[i].ActiveFromMonth.Compare(list[j].ActiveFromMonth); c != 0 {
			return c < 0
		}
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ObligationID < list[j].ObligationID
	})
}

func (s *memStore) ListObligations(ctx context.Context, ownerID string) ([]domain.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RecurringObligation
	for _, o := range s.obligations {
		if o.OwnerID == ownerID {
			out = append(out, s.withAllocations(o))
		}
	}
	sortByActiveFrom(out)
	return out, nil
}

func (s *memStore) FindObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.obligations[obligationID]
	if !ok || o.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError("obligation " + obligationID)
	}
	o = s.withAllocations(o)
	return &o, nil
}

func (s *memStore) GetAllocations(ctx context.Context, obligationID string) (domain.AllocationSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocations[obligationID].Clone(), nil
}

func (s *memStore) ListObligationLineage(ctx context.Context, lineageID, ownerID string) ([]domain.RecurringObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RecurringObligation
	for _, o := range s.obligations {
		if o.LineageID == lineageID && o.OwnerID == ownerID {
			out = append(out, s.withAllocations(o))
		}
	}
	sortByActiveFrom(out)
	return out, nil
}

func (s *memStore) ListObligationOwners(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	var owners []string
	for _, o := range s.obligations {
		if _, ok := seen[o.OwnerID]; !ok {
			seen[o.OwnerID] = struct{}{}
			owners = append(owners, o.OwnerID)
		}
	}
	sort.Strings(owners)
	return owners, nil
}

func (s *memStore) CreateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.obligations[obligation.ObligationID]; exists {
		return apperrors.ErrDuplicate
	}
	obligation.Allocations = nil
	s.obligations[obligation.ObligationID] = obligation
	return nil
}

func (s *memStore) UpdateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.obligations[obligation.ObligationID]
	if !ok || existing.OwnerID != obligation.OwnerID {
		return apperrors.NewNotFoundError("obligation " + obligation.ObligationID)
	}
	obligation.Allocations = nil
	s.obligations[obligation.ObligationID] = obligation
	return nil
}

func (s *memStore) DeleteObligation(ctx context.Context, obligationID, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.obligations[obligationID]
	if !ok || existing.OwnerID != ownerID {
		return apperrors.NewNotFoundError("obligation " + obligationID)
	}
	delete(s.obligations, obligationID)
	delete(s.allocations, obligationID)
	return nil
}

func (s *memStore) SetAllocations(ctx context.Context, obligationID string, allocations domain.AllocationSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(allocations) == 0 {
		delete(s.allocations, obligationID)
		return nil
	}
	s.allocations[obligationID] = allocations.Clone()
	return nil
}

func (s *memStore) FindGeneratedTransaction(ctx context.Context, ownerID, obligationID string, month domain.Month) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.OwnerID == ownerID && t.SourceObligationID != nil && *t.SourceObligationID == obligationID && t.OccurredMonth.Equal(month) {
			id := t.TransactionID
			return &id, nil
		}
	}
	return nil, nil
}

func (s *memStore) InsertGeneratedTransaction(ctx context.Context, txn domain.Transaction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.OwnerID == txn.OwnerID && t.SourceObligationID != nil && *t.SourceObligationID == *txn.SourceObligationID && t.OccurredMonth.Equal(txn.OccurredMonth) {
			return false, nil
		}
	}
	s.transactions[txn.TransactionID] = txn
	return true, nil
}

func (s *memStore) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[txn.TransactionID] = txn
	return nil
}

func (s *memStore) ListTransactionsByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.transactions {
		if t.OwnerID == ownerID && t.OccurredMonth.Equal(month) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.Before(out[j].OccurredOn) })
	return out, nil
}

// seedObligation writes o and its allocations without any validation, the way a
// legacy or hand-edited row would look.
func (s *memStore) seedObligation(o domain.RecurringObligation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.LineageID == "" {
		o.LineageID = o.ObligationID
	}
	if len(o.Allocations) > 0 {
		s.allocations[o.ObligationID] = o.Allocations.Clone()
	}
	o.Allocations = nil
	s.obligations[o.ObligationID] = o
}

func (s *memStore) transactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// --- Deterministic service options ---

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func sequentialIDs() services.ServiceOption {
	var (
		mu sync.Mutex
		n  int
	)
	return services.WithIDGenerator(func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%03d", n)
	})
}

func testOptions() []services.ServiceOption {
	return []services.ServiceOption{
		services.WithClock(func() time.Time { return fixedNow }),
		sequentialIDs(),
	}
}

// --- Mock repositories ---

type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) ListObligations(ctx context.Context, ownerID string) ([]domain.RecurringObligation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationRepository) FindObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error) {
	args := m.Called(ctx, obligationID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationRepository) GetAllocations(ctx context.Context, obligationID string) (domain.AllocationSet, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.AllocationSet), args.Error(1)
}

func (m *MockObligationRepository) ListObligationLineage(ctx context.Context, lineageID, ownerID string) ([]domain.RecurringObligation, error) {
	args := m.Called(ctx, lineageID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationRepository) ListObligationOwners(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockObligationRepository) CreateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) UpdateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) DeleteObligation(ctx context.Context, obligationID, ownerID string) error {
	args := m.Called(ctx, obligationID, ownerID)
	return args.Error(0)
}

func (m *MockObligationRepository) SetAllocations(ctx context.Context, obligationID string, allocations domain.AllocationSet) error {
	args := m.Called(ctx, obligationID, allocations)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindGeneratedTransaction(ctx context.Context, ownerID, obligationID string, month domain.Month) (*string, error) {
	args := m.Called(ctx, ownerID, obligationID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockTransactionRepository) InsertGeneratedTransaction(ctx context.Context, txn domain.Transaction) (bool, error) {
	args := m.Called(ctx, txn)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// passThroughTxManager runs fn directly.
type passThroughTxManager struct{}

func (passThroughTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
