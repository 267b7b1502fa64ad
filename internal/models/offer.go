package models

import "time"

type OfferTier string
type OfferStatus string

const (
	OfferTierInstant      OfferTier = "instant"
	OfferTierInstallment  OfferTier = "installment"
	OfferTierManualReview OfferTier = "manual_review"

	OfferStatusPending OfferStatus = "pending"
	OfferStatusPaid    OfferStatus = "paid"
	OfferStatusFailed  OfferStatus = "failed"
)

type OfferRequest struct {
	UserID                   string  `json:"user_id" binding:"required"`
	OrderAmount              float64 `json:"order_amount" binding:"required,gt=0"`
	RecentPayments           int     `json:"recent_payments" binding:"gte=0"`
	FailedPaymentsLast30Days int     `json:"failed_payments_last_30_days" binding:"gte=0"`
	DeviceCountry            string  `json:"device_country" binding:"required"`
	BillingCountry           string  `json:"billing_country" binding:"required"`
	EmployerEnrolled         bool    `json:"employer_enrolled"`
	SalaryMonthly            float64 `json:"salary_monthly" binding:"gte=0"`
	IdempotencyKey           string  `json:"idempotency_key"`
}

type Offer struct {
	ID             string      `json:"offer_id" db:"offer_id"`
	UserID         string      `json:"user_id" db:"user_id"`
	OrderAmount    float64     `json:"order_amount" db:"order_amount"`
	Tier           OfferTier   `json:"tier" db:"tier"`
	AmountOffered  float64     `json:"amount_offered" db:"amount_offered"`
	TermMonths     int         `json:"term_months" db:"term_months"`
	InterestRate   float64     `json:"interest_rate" db:"interest_rate"`
	MonthlyPayment float64     `json:"monthly_payment" db:"monthly_payment"`
	Reason         string      `json:"reason" db:"reason"`
	Status         OfferStatus `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// Database schema
const OfferSchema = `
CREATE TABLE IF NOT EXISTS offers (
    offer_id VARCHAR(36) PRIMARY KEY,
    user_id VARCHAR(255) NOT NULL,
    order_amount DECIMAL(19, 4) NOT NULL,
    tier VARCHAR(20) NOT NULL,
    amount_offered DECIMAL(19, 4) NOT NULL,
    term_months INTEGER NOT NULL,
    interest_rate DECIMAL(7, 4) NOT NULL,
    monthly_payment DECIMAL(19, 4) NOT NULL,
    reason TEXT,
    status VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_offers_user_id ON offers (user_id);
CREATE INDEX IF NOT EXISTS idx_offers_status ON offers (status);
`
