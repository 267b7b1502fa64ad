// Package service holds the decision engines and the services that wrap
// them with persistence, caching, and metrics.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/metrics"
	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

// FraudStore persists fraud check results. Results are single-shot audit
// snapshots and never updated.
type FraudStore interface {
	Save(ctx context.Context, result *models.FraudCheckResult) error
	List(ctx context.Context, skip, limit int) ([]*models.FraudCheckResult, error)
}

type FraudService struct {
	store  FraudStore
	logger *zap.Logger
}

func NewFraudService(store FraudStore, logger *zap.Logger) *FraudService {
	return &FraudService{
		store:  store,
		logger: logger,
	}
}

// RunCheck scores a transaction context and persists the audit snapshot.
func (s *FraudService) RunCheck(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudCheckResult, error) {
	result := ScoreFraud(req)

	if err := s.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save fraud check: %w", err)
	}

	metrics.FraudChecksTotal.WithLabelValues(string(result.RiskTier)).Inc()

	if result.RiskTier == models.RiskTierFlagged {
		s.logger.Warn("high-risk transaction detected",
			zap.String("fraud_check_id", result.ID),
			zap.String("user_id", result.UserID),
			zap.Int("score", result.Score),
			zap.Strings("flags", result.Flags))
	} else {
		s.logger.Info("fraud check completed",
			zap.String("fraud_check_id", result.ID),
			zap.String("risk_tier", string(result.RiskTier)),
			zap.Int("score", result.Score))
	}

	return result, nil
}

// ListChecks returns a page of fraud check results for the admin dashboard.
func (s *FraudService) ListChecks(ctx context.Context, skip, limit int) ([]*models.FraudCheckResult, error) {
	return s.store.List(ctx, skip, limit)
}
