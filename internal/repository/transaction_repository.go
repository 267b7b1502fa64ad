package repository

import (
	"context"
	"database/sql"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, offer_id, user_id, amount, status,
			failure_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.OfferID,
		txn.UserID,
		txn.Amount,
		txn.Status,
		txn.FailureReason,
		txn.CreatedAt,
	)

	return err
}

func (r *TransactionRepository) List(ctx context.Context, skip, limit int) ([]*models.PaymentTransaction, error) {
	query := `
		SELECT transaction_id, offer_id, user_id, amount, status,
			   failure_reason, created_at
		FROM transactions ORDER BY created_at DESC OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []*models.PaymentTransaction{}
	for rows.Next() {
		txn := &models.PaymentTransaction{}
		if err := rows.Scan(
			&txn.ID,
			&txn.OfferID,
			&txn.UserID,
			&txn.Amount,
			&txn.Status,
			&txn.FailureReason,
			&txn.CreatedAt,
		); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}
