package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amit20042003/Liberary/internal/app/models"
)

// FeeStructureRepository handles database operations for per-account fee rates
type FeeStructureRepository struct {
	db *pgxpool.Pool
}

// NewFeeStructureRepository creates a new fee structure repository
func NewFeeStructureRepository(db *pgxpool.Pool) *FeeStructureRepository {
	return &FeeStructureRepository{
		db: db,
	}
}

// GetByAccount retrieves the fee structure for an account. Accounts that never
// customized their rates fall back to the defaults.
func (r *FeeStructureRepository) GetByAccount(ctx context.Context, accountID int64) (*models.FeeStructure, error) {
	query := `
		SELECT account_id, full_time, half_time, updated_at
		FROM fee_structures
		WHERE account_id = $1
	`

	var fees models.FeeStructure
	err := r.db.QueryRow(ctx, query, accountID).
		Scan(&fees.AccountID, &fees.FullTime, &fees.HalfTime, &fees.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.FeeStructure{
				AccountID: accountID,
				FullTime:  models.DefaultFullTimeFee,
				HalfTime:  models.DefaultHalfTimeFee,
			}, nil
		}
		return nil, fmt.Errorf("error retrieving fee structure: %w", err)
	}

	return &fees, nil
}

// Upsert stores the fee structure for an account, replacing any existing row.
// Changed rates apply to future admissions only; existing students keep the
// fee amount captured on their record.
func (r *FeeStructureRepository) Upsert(ctx context.Context, fees *models.FeeStructure) error {
	query := `
		INSERT INTO fee_structures (account_id, full_time, half_time, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account_id)
		DO UPDATE SET full_time = EXCLUDED.full_time, half_time = EXCLUDED.half_time, updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, fees.AccountID, fees.FullTime, fees.HalfTime).Scan(&fees.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error saving fee structure: %w", err)
	}

	return nil
}
