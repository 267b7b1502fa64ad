package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

type FraudRepository struct {
	db *sql.DB
}

func NewFraudRepository(db *sql.DB) *FraudRepository {
	return &FraudRepository{db: db}
}

func (r *FraudRepository) Save(ctx context.Context, result *models.FraudCheckResult) error {
	signals, err := json.Marshal(result.Signals)
	if err != nil {
		return fmt.Errorf("failed to encode signals: %w", err)
	}

	query := `
		INSERT INTO fraud_checks (
			fraud_check_id, user_id, transaction_amount, fraud_score,
			flags, signals, risk_tier, action, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		result.TransactionAmount,
		result.Score,
		pq.Array(result.Flags),
		signals,
		result.RiskTier,
		result.Action,
		result.CreatedAt,
	)

	return err
}

func (r *FraudRepository) List(ctx context.Context, skip, limit int) ([]*models.FraudCheckResult, error) {
	query := `
		SELECT fraud_check_id, user_id, transaction_amount, fraud_score,
			   flags, signals, risk_tier, action, created_at
		FROM fraud_checks ORDER BY created_at DESC OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*models.FraudCheckResult{}
	for rows.Next() {
		result := &models.FraudCheckResult{}
		var signals []byte
		if err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.TransactionAmount,
			&result.Score,
			pq.Array(&result.Flags),
			&signals,
			&result.RiskTier,
			&result.Action,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(signals) > 0 {
			if err := json.Unmarshal(signals, &result.Signals); err != nil {
				return nil, fmt.Errorf("failed to decode signals: %w", err)
			}
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
