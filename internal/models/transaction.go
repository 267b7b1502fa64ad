package models

import "time"

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type PayRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
}

type PayResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type PaymentTransaction struct {
	ID            string            `json:"transaction_id" db:"transaction_id"`
	OfferID       string            `json:"offer_id" db:"offer_id"`
	UserID        string            `json:"user_id" db:"user_id"`
	Amount        float64           `json:"amount" db:"amount"`
	Status        TransactionStatus `json:"status" db:"status"`
	FailureReason string            `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}

// Database schema
const TransactionSchema = `
CREATE TABLE IF NOT EXISTS transactions (
    transaction_id VARCHAR(36) PRIMARY KEY,
    offer_id VARCHAR(36) NOT NULL REFERENCES offers (offer_id),
    user_id VARCHAR(255) NOT NULL,
    amount DECIMAL(19, 4) NOT NULL,
    status VARCHAR(20) NOT NULL,
    failure_reason TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_transactions_offer_id ON transactions (offer_id);
`
