package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

// OwnerRepository handles database operations for library owner accounts
type OwnerRepository struct {
	db *pgxpool.Pool
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{
		db: db,
	}
}

// Create inserts a new owner account
func (r *OwnerRepository) Create(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (email, password_hash, library_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, owner.Email, owner.PasswordHash, owner.LibraryName).
		Scan(&owner.ID, &owner.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating owner: %w", err)
	}

	return nil
}

// GetByEmail retrieves an owner account by email
func (r *OwnerRepository) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	query := `
		SELECT id, email, password_hash, library_name, created_at
		FROM owners
		WHERE email = $1
	`

	var owner models.Owner
	err := r.db.QueryRow(ctx, query, email).
		Scan(&owner.ID, &owner.Email, &owner.PasswordHash, &owner.LibraryName, &owner.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error retrieving owner: %w", err)
	}

	return &owner, nil
}

// GetByID retrieves an owner account by primary key
func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	query := `
		SELECT id, email, password_hash, library_name, created_at
		FROM owners
		WHERE id = $1
	`

	var owner models.Owner
	err := r.db.QueryRow(ctx, query, id).
		Scan(&owner.ID, &owner.Email, &owner.PasswordHash, &owner.LibraryName, &owner.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error retrieving owner: %w", err)
	}

	return &owner, nil
}

// EmailExists checks whether an owner account already uses the given email
func (r *OwnerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM owners WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking owner email: %w", err)
	}
	return exists, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}
