// Package repository provides the persistence layer for offers, payment
// transactions, and fraud checks: PostgreSQL implementations and in-memory
// ones used when no database is configured and by the tests.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

// MemoryOfferStore keeps offers in a mutex-guarded map. It honors the same
// check-and-set semantics as the SQL repository.
type MemoryOfferStore struct {
	mu     sync.Mutex
	offers map[string]*models.Offer
}

func NewMemoryOfferStore() *MemoryOfferStore {
	return &MemoryOfferStore{offers: make(map[string]*models.Offer)}
}

func (s *MemoryOfferStore) Create(ctx context.Context, offer *models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *offer
	s.offers[offer.ID] = &clone
	return nil
}

func (s *MemoryOfferStore) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[id]
	if !ok {
		return nil, nil
	}
	clone := *offer
	return &clone, nil
}

// UpdateStatusIfPending transitions the offer only if it is still pending,
// under the store lock, so at most one concurrent caller wins.
func (s *MemoryOfferStore) UpdateStatusIfPending(ctx context.Context, id string, status models.OfferStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[id]
	if !ok || offer.Status != models.OfferStatusPending {
		return false, nil
	}
	offer.Status = status
	return true, nil
}

func (s *MemoryOfferStore) List(ctx context.Context, skip, limit int) ([]*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*models.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		clone := *offer
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return page(all, skip, limit), nil
}

// MemoryTransactionStore keeps payment transactions in memory.
type MemoryTransactionStore struct {
	mu   sync.Mutex
	txns map[string]*models.PaymentTransaction
}

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{txns: make(map[string]*models.PaymentTransaction)}
}

func (s *MemoryTransactionStore) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *txn
	s.txns[txn.ID] = &clone
	return nil
}

func (s *MemoryTransactionStore) List(ctx context.Context, skip, limit int) ([]*models.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*models.PaymentTransaction, 0, len(s.txns))
	for _, txn := range s.txns {
		clone := *txn
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return page(all, skip, limit), nil
}

// MemoryFraudStore keeps fraud check results in memory.
type MemoryFraudStore struct {
	mu     sync.Mutex
	checks map[string]*models.FraudCheckResult
}

func NewMemoryFraudStore() *MemoryFraudStore {
	return &MemoryFraudStore{checks: make(map[string]*models.FraudCheckResult)}
}

func (s *MemoryFraudStore) Save(ctx context.Context, result *models.FraudCheckResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *result
	s.checks[result.ID] = &clone
	return nil
}

func (s *MemoryFraudStore) List(ctx context.Context, skip, limit int) ([]*models.FraudCheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*models.FraudCheckResult, 0, len(s.checks))
	for _, check := range s.checks {
		clone := *check
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return page(all, skip, limit), nil
}

func page[T any](all []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(all) {
		return []T{}
	}
	end := skip + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[skip:end]
}
