package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

// Fraud signal weights and thresholds.
const (
	weightCountryMismatch    = 30
	weightHighFailedPayments = 40
	weightUnusualAmount      = 20
	weightMultipleDevices    = 25

	failedPaymentsThreshold = 3
	unusualAmountThreshold  = 5000.0
	deviceCountThreshold    = 3
)

// Risk tier boundaries on the summed score.
const (
	suspiciousScoreMin = 30
	flaggedScoreMin    = 50
)

type fraudSignal struct {
	name      string
	weight    int
	triggered func(req *models.FraudCheckRequest) bool
	describe  func(req *models.FraudCheckRequest) string
}

// fraudSignals are evaluated independently, in this order; every signal
// contributes its full weight when triggered and no signal short-circuits
// another.
var fraudSignals = []fraudSignal{
	{
		name:   models.SignalCountryMismatch,
		weight: weightCountryMismatch,
		triggered: func(req *models.FraudCheckRequest) bool {
			return req.DeviceCountry != req.BillingCountry
		},
		describe: func(req *models.FraudCheckRequest) string {
			return fmt.Sprintf("device country %s, billing country %s", req.DeviceCountry, req.BillingCountry)
		},
	},
	{
		name:   models.SignalHighFailedPayments,
		weight: weightHighFailedPayments,
		triggered: func(req *models.FraudCheckRequest) bool {
			return req.FailedPaymentsLast30Days > failedPaymentsThreshold
		},
		describe: func(req *models.FraudCheckRequest) string {
			return fmt.Sprintf("%d failed payments in last 30 days", req.FailedPaymentsLast30Days)
		},
	},
	{
		name:   models.SignalUnusualAmount,
		weight: weightUnusualAmount,
		triggered: func(req *models.FraudCheckRequest) bool {
			return req.TransactionAmount > unusualAmountThreshold
		},
		describe: func(req *models.FraudCheckRequest) string {
			return fmt.Sprintf("transaction amount %.2f", req.TransactionAmount)
		},
	},
	{
		name:   models.SignalMultipleDevices,
		weight: weightMultipleDevices,
		triggered: func(req *models.FraudCheckRequest) bool {
			return req.DeviceCount > deviceCountThreshold
		},
		describe: func(req *models.FraudCheckRequest) string {
			return fmt.Sprintf("%d devices on account", req.DeviceCount)
		},
	},
}

// ScoreFraud evaluates all fraud signals against a transaction context and
// accumulates a risk score. The raw sum is never clamped; it is part of the
// audit record. Triggered signal names land in Flags in evaluation order,
// and Signals carries the full per-rule audit trail regardless of outcome.
func ScoreFraud(req *models.FraudCheckRequest) *models.FraudCheckResult {
	result := &models.FraudCheckResult{
		ID:                uuid.New().String(),
		UserID:            req.UserID,
		TransactionAmount: req.TransactionAmount,
		Flags:             []string{},
		Signals:           make([]models.SignalResult, 0, len(fraudSignals)),
		CreatedAt:         time.Now().UTC(),
	}

	for _, signal := range fraudSignals {
		fired := signal.triggered(req)
		sr := models.SignalResult{
			Name:        signal.name,
			Triggered:   fired,
			Description: signal.describe(req),
		}
		if fired {
			sr.Weight = signal.weight
			result.Score += signal.weight
			result.Flags = append(result.Flags, signal.name)
		}
		result.Signals = append(result.Signals, sr)
	}

	result.RiskTier, result.Action = classifyRisk(result.Score)
	return result
}

// classifyRisk maps a summed score onto non-overlapping tier ranges.
func classifyRisk(score int) (models.RiskTier, models.FraudAction) {
	switch {
	case score >= flaggedScoreMin:
		return models.RiskTierFlagged, models.FraudActionBlock
	case score >= suspiciousScoreMin:
		return models.RiskTierSuspicious, models.FraudActionReview
	default:
		return models.RiskTierApproved, models.FraudActionApprove
	}
}
