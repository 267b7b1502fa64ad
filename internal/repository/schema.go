package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Offers must come first; transactions reference them.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range []string{
		models.OfferSchema,
		models.TransactionSchema,
		models.FraudCheckSchema,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
