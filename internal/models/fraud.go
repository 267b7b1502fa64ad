package models

import "time"

type RiskTier string
type FraudAction string

const (
	RiskTierApproved   RiskTier = "approved"
	RiskTierSuspicious RiskTier = "suspicious"
	RiskTierFlagged    RiskTier = "flagged"

	FraudActionApprove FraudAction = "approve"
	FraudActionReview  FraudAction = "review"
	FraudActionBlock   FraudAction = "block"
)

// Signal names, in evaluation order.
const (
	SignalCountryMismatch    = "country_mismatch"
	SignalHighFailedPayments = "high_failed_payments"
	SignalUnusualAmount      = "unusual_amount"
	SignalMultipleDevices    = "multiple_devices"
)

type FraudCheckRequest struct {
	UserID                   string  `json:"user_id" binding:"required"`
	TransactionAmount        float64 `json:"transaction_amount" binding:"required,gt=0"`
	DeviceCountry            string  `json:"device_country" binding:"required"`
	BillingCountry           string  `json:"billing_country" binding:"required"`
	DeviceCount              int     `json:"device_count" binding:"required,gte=1"`
	FailedPaymentsLast30Days int     `json:"failed_payments_last_30_days" binding:"gte=0"`
}

type SignalResult struct {
	Name        string `json:"name"`
	Triggered   bool   `json:"triggered"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

type FraudCheckResult struct {
	ID                string         `json:"fraud_check_id" db:"fraud_check_id"`
	UserID            string         `json:"user_id" db:"user_id"`
	TransactionAmount float64        `json:"transaction_amount" db:"transaction_amount"`
	Score             int            `json:"fraud_score" db:"fraud_score"`
	Flags             []string       `json:"flags" db:"flags"`
	Signals           []SignalResult `json:"signals" db:"signals"`
	RiskTier          RiskTier       `json:"risk_tier" db:"risk_tier"`
	Action            FraudAction    `json:"action" db:"action"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
}

// Database schema
const FraudCheckSchema = `
CREATE TABLE IF NOT EXISTS fraud_checks (
    fraud_check_id VARCHAR(36) PRIMARY KEY,
    user_id VARCHAR(255) NOT NULL,
    transaction_amount DECIMAL(19, 4) NOT NULL,
    fraud_score INTEGER NOT NULL,
    flags TEXT[],
    signals JSONB,
    risk_tier VARCHAR(20) NOT NULL,
    action VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_fraud_checks_user_id ON fraud_checks (user_id);
`
