package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
	"github.com/Moha-Bremoo/RouaProject/internal/repository"
	"github.com/Moha-Bremoo/RouaProject/pkg/redis"
)

// fakeCache is an in-memory OfferCache for exercising idempotency replay.
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := c.entries[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return val, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.entries[key] = string(value.([]byte))
	return nil
}

func newTestOfferService() (*OfferService, *repository.MemoryTransactionStore) {
	txns := repository.NewMemoryTransactionStore()
	svc := NewOfferService(repository.NewMemoryOfferStore(), txns, nil, zap.NewNop())
	return svc, txns
}

func offerRequest(amount float64, recentPayments int) *models.OfferRequest {
	return &models.OfferRequest{
		UserID:         "user-1",
		OrderAmount:    amount,
		RecentPayments: recentPayments,
		DeviceCountry:  "US",
		BillingCountry: "US",
	}
}

func TestCreateOfferPersists(t *testing.T) {
	svc, _ := newTestOfferService()
	ctx := context.Background()

	offer, err := svc.CreateOffer(ctx, offerRequest(150, 0))
	require.NoError(t, err)
	require.NotNil(t, offer)

	stored, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferTierInstant, stored.Tier)
	assert.Equal(t, models.OfferStatusPending, stored.Status)
	assert.Equal(t, 150.0, stored.AmountOffered)
}

func TestCreateOfferIdempotencyReplay(t *testing.T) {
	offers := repository.NewMemoryOfferStore()
	svc := NewOfferService(offers, repository.NewMemoryTransactionStore(), newFakeCache(), zap.NewNop())
	ctx := context.Background()

	req := offerRequest(150, 0)
	req.IdempotencyKey = "key-1"

	first, err := svc.CreateOffer(ctx, req)
	require.NoError(t, err)

	replayed, err := svc.CreateOffer(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, replayed.ID)
	assert.Equal(t, first.Tier, replayed.Tier)

	// The replay must not write a second offer.
	all, err := offers.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// A different key creates a fresh offer.
	other := offerRequest(150, 0)
	other.IdempotencyKey = "key-2"
	second, err := svc.CreateOffer(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err = offers.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAttemptPaymentSuccess(t *testing.T) {
	svc, txns := newTestOfferService()
	ctx := context.Background()

	offer, err := svc.CreateOffer(ctx, offerRequest(150, 0))
	require.NoError(t, err)

	txn, err := svc.AttemptPayment(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, offer.AmountOffered, txn.Amount)
	assert.Equal(t, offer.ID, txn.OfferID)

	paid, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusPaid, paid.Status)

	history, err := txns.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAttemptPaymentUnknownOffer(t *testing.T) {
	svc, txns := newTestOfferService()
	ctx := context.Background()

	_, err := svc.AttemptPayment(ctx, "no-such-offer")
	assert.ErrorIs(t, err, models.ErrOfferNotFound)

	history, err := txns.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAttemptPaymentTwiceIsRejected(t *testing.T) {
	svc, txns := newTestOfferService()
	ctx := context.Background()

	offer, err := svc.CreateOffer(ctx, offerRequest(150, 0))
	require.NoError(t, err)

	_, err = svc.AttemptPayment(ctx, offer.ID)
	require.NoError(t, err)

	_, err = svc.AttemptPayment(ctx, offer.ID)
	assert.ErrorIs(t, err, models.ErrOfferNotPending)

	// The offer stays paid; the second attempt leaves a failed audit record.
	paid, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusPaid, paid.Status)

	history, err := txns.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	statuses := map[models.TransactionStatus]int{}
	for _, txn := range history {
		statuses[txn.Status]++
	}
	assert.Equal(t, 1, statuses[models.TransactionStatusCompleted])
	assert.Equal(t, 1, statuses[models.TransactionStatusFailed])
}

func TestAttemptPaymentManualReview(t *testing.T) {
	svc, txns := newTestOfferService()
	ctx := context.Background()

	offer, err := svc.CreateOffer(ctx, offerRequest(2000, 0))
	require.NoError(t, err)
	require.Equal(t, models.OfferTierManualReview, offer.Tier)

	_, err = svc.AttemptPayment(ctx, offer.ID)
	assert.ErrorIs(t, err, models.ErrOfferNotPayable)

	failed, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusFailed, failed.Status)

	// A retry is rejected the same way without further state changes.
	_, err = svc.AttemptPayment(ctx, offer.ID)
	assert.ErrorIs(t, err, models.ErrOfferNotPayable)

	still, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusFailed, still.Status)

	history, err := txns.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	for _, txn := range history {
		assert.Equal(t, models.TransactionStatusFailed, txn.Status)
	}
}

func TestConcurrentPaymentsSingleWinner(t *testing.T) {
	svc, txns := newTestOfferService()
	ctx := context.Background()

	offer, err := svc.CreateOffer(ctx, offerRequest(150, 0))
	require.NoError(t, err)

	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AttemptPayment(ctx, offer.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, models.ErrOfferNotPending)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	paid, err := svc.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusPaid, paid.Status)

	history, err := txns.List(ctx, 0, attempts+1)
	require.NoError(t, err)

	var completed int
	for _, txn := range history {
		if txn.Status == models.TransactionStatusCompleted {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
}

func TestListOffersPagination(t *testing.T) {
	svc, _ := newTestOfferService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateOffer(ctx, offerRequest(100, 0))
		require.NoError(t, err)
	}

	offers, err := svc.ListOffers(ctx, 0, 3)
	require.NoError(t, err)
	assert.Len(t, offers, 3)

	rest, err := svc.ListOffers(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	none, err := svc.ListOffers(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}
