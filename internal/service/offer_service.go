package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/metrics"
	"github.com/Moha-Bremoo/RouaProject/internal/models"
	"github.com/Moha-Bremoo/RouaProject/pkg/redis"
)

// OfferStore is the persistence contract the offer lifecycle depends on.
// UpdateStatusIfPending must be an atomic check-and-set: it reports true for
// exactly one caller when several race on the same pending offer.
type OfferStore interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	UpdateStatusIfPending(ctx context.Context, id string, status models.OfferStatus) (bool, error)
	List(ctx context.Context, skip, limit int) ([]*models.Offer, error)
}

// TransactionStore records every payment attempt for audit.
type TransactionStore interface {
	Create(ctx context.Context, txn *models.PaymentTransaction) error
	List(ctx context.Context, skip, limit int) ([]*models.PaymentTransaction, error)
}

// OfferCache stores idempotency-key replays. Satisfied by pkg/redis.Client.
type OfferCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

const idempotencyTTL = 24 * time.Hour

type OfferService struct {
	offers OfferStore
	txns   TransactionStore
	cache  OfferCache
	logger *zap.Logger
}

// NewOfferService wires the offer lifecycle. The cache is optional; a nil
// cache disables idempotency-key replay.
func NewOfferService(offers OfferStore, txns TransactionStore, cache OfferCache, logger *zap.Logger) *OfferService {
	return &OfferService{
		offers: offers,
		txns:   txns,
		cache:  cache,
		logger: logger,
	}
}

// CreateOffer runs the offer engine on a validated request and persists the
// result. Replayed idempotency keys return the originally created offer.
func (s *OfferService) CreateOffer(ctx context.Context, req *models.OfferRequest) (*models.Offer, error) {
	if req.IdempotencyKey != "" {
		if cached, err := s.getIdempotentOffer(ctx, req.IdempotencyKey); err == nil && cached != nil {
			return cached, nil
		}
	}

	offer := DecideOffer(req)

	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}

	metrics.OffersTotal.WithLabelValues(string(offer.Tier)).Inc()
	s.logger.Info("offer created",
		zap.String("offer_id", offer.ID),
		zap.String("user_id", offer.UserID),
		zap.String("tier", string(offer.Tier)),
		zap.Float64("amount_offered", offer.AmountOffered))

	if req.IdempotencyKey != "" {
		s.cacheIdempotentOffer(ctx, req.IdempotencyKey, offer)
	}

	return offer, nil
}

// GetOffer retrieves an offer by ID.
func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, models.ErrOfferNotFound
	}
	return offer, nil
}

// AttemptPayment settles a pending offer. Exactly one of N concurrent
// attempts wins the pending -> paid transition; every attempt against an
// existing offer is recorded as a transaction, successful or not. Attempts
// against offers already in a terminal state are rejected without mutation.
func (s *OfferService) AttemptPayment(ctx context.Context, offerID string) (*models.PaymentTransaction, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		metrics.PaymentAttemptsTotal.WithLabelValues("not_found").Inc()
		return nil, models.ErrOfferNotFound
	}

	if offer.Tier == models.OfferTierManualReview {
		// A review-tier offer has no payable amount; close it out so it
		// cannot be retried indefinitely.
		if _, err := s.offers.UpdateStatusIfPending(ctx, offerID, models.OfferStatusFailed); err != nil {
			return nil, err
		}
		s.recordFailedAttempt(ctx, offer, models.ErrOfferNotPayable.Error())
		metrics.PaymentAttemptsTotal.WithLabelValues("not_payable").Inc()
		return nil, models.ErrOfferNotPayable
	}

	if offer.Status != models.OfferStatusPending {
		s.recordFailedAttempt(ctx, offer, models.ErrOfferNotPending.Error())
		metrics.PaymentAttemptsTotal.WithLabelValues("conflict").Inc()
		return nil, models.ErrOfferNotPending
	}

	won, err := s.offers.UpdateStatusIfPending(ctx, offerID, models.OfferStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to update offer status: %w", err)
	}
	if !won {
		// Lost the race to a concurrent attempt.
		s.recordFailedAttempt(ctx, offer, models.ErrOfferNotPending.Error())
		metrics.PaymentAttemptsTotal.WithLabelValues("conflict").Inc()
		return nil, models.ErrOfferNotPending
	}

	txn := &models.PaymentTransaction{
		ID:        uuid.New().String(),
		OfferID:   offer.ID,
		UserID:    offer.UserID,
		Amount:    offer.AmountOffered,
		Status:    models.TransactionStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.txns.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	metrics.PaymentAttemptsTotal.WithLabelValues("completed").Inc()
	s.logger.Info("payment completed",
		zap.String("transaction_id", txn.ID),
		zap.String("offer_id", offer.ID),
		zap.Float64("amount", txn.Amount))

	return txn, nil
}

// ListOffers returns a page of offers for the admin dashboard.
func (s *OfferService) ListOffers(ctx context.Context, skip, limit int) ([]*models.Offer, error) {
	return s.offers.List(ctx, skip, limit)
}

// ListTransactions returns a page of payment transactions.
func (s *OfferService) ListTransactions(ctx context.Context, skip, limit int) ([]*models.PaymentTransaction, error) {
	return s.txns.List(ctx, skip, limit)
}

func (s *OfferService) recordFailedAttempt(ctx context.Context, offer *models.Offer, reason string) {
	txn := &models.PaymentTransaction{
		ID:            uuid.New().String(),
		OfferID:       offer.ID,
		UserID:        offer.UserID,
		Amount:        offer.AmountOffered,
		Status:        models.TransactionStatusFailed,
		FailureReason: reason,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.txns.Create(ctx, txn); err != nil {
		s.logger.Error("failed to record rejected payment attempt",
			zap.Error(err),
			zap.String("offer_id", offer.ID))
	}
}

func (s *OfferService) getIdempotentOffer(ctx context.Context, key string) (*models.Offer, error) {
	if s.cache == nil {
		return nil, redis.ErrNotFound
	}

	data, err := s.cache.Get(ctx, idempotencyKey(key))
	if err != nil {
		return nil, err
	}

	var offer models.Offer
	if err := json.Unmarshal([]byte(data), &offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (s *OfferService) cacheIdempotentOffer(ctx context.Context, key string, offer *models.Offer) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(offer)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, idempotencyKey(key), data, idempotencyTTL); err != nil {
		s.logger.Warn("failed to cache idempotent offer", zap.Error(err))
	}
}

func idempotencyKey(key string) string {
	return fmt.Sprintf("idempotency:offer:%s", key)
}
