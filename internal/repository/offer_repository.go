package repository

import (
	"context"
	"database/sql"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

type OfferRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	query := `
		INSERT INTO offers (
			offer_id, user_id, order_amount, tier, amount_offered,
			term_months, interest_rate, monthly_payment, reason, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		offer.ID,
		offer.UserID,
		offer.OrderAmount,
		offer.Tier,
		offer.AmountOffered,
		offer.TermMonths,
		offer.InterestRate,
		offer.MonthlyPayment,
		offer.Reason,
		offer.Status,
		offer.CreatedAt,
		offer.UpdatedAt,
	)

	return err
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	query := `
		SELECT offer_id, user_id, order_amount, tier, amount_offered,
			   term_months, interest_rate, monthly_payment, reason, status,
			   created_at, updated_at
		FROM offers WHERE offer_id = $1
	`

	offer := &models.Offer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&offer.ID,
		&offer.UserID,
		&offer.OrderAmount,
		&offer.Tier,
		&offer.AmountOffered,
		&offer.TermMonths,
		&offer.InterestRate,
		&offer.MonthlyPayment,
		&offer.Reason,
		&offer.Status,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return offer, err
}

// UpdateStatusIfPending performs the atomic check-and-set that guards the
// pending -> paid/failed transition. It reports whether this caller won the
// transition; a non-pending offer is left untouched.
func (r *OfferRepository) UpdateStatusIfPending(ctx context.Context, id string, status models.OfferStatus) (bool, error) {
	query := `
		UPDATE offers SET status = $2, updated_at = NOW()
		WHERE offer_id = $1 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, id, status, models.OfferStatusPending)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

func (r *OfferRepository) List(ctx context.Context, skip, limit int) ([]*models.Offer, error) {
	query := `
		SELECT offer_id, user_id, order_amount, tier, amount_offered,
			   term_months, interest_rate, monthly_payment, reason, status,
			   created_at, updated_at
		FROM offers ORDER BY created_at DESC OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []*models.Offer{}
	for rows.Next() {
		offer := &models.Offer{}
		if err := rows.Scan(
			&offer.ID,
			&offer.UserID,
			&offer.OrderAmount,
			&offer.Tier,
			&offer.AmountOffered,
			&offer.TermMonths,
			&offer.InterestRate,
			&offer.MonthlyPayment,
			&offer.Reason,
			&offer.Status,
			&offer.CreatedAt,
			&offer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, rows.Err()
}
