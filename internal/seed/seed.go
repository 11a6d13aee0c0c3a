package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/amit20042003/Liberary/internal/app/models"
	appRepos "github.com/amit20042003/Liberary/internal/app/repositories"
)

// Default owner credentials for a fresh installation. Meant for first login
// only; change the password immediately.
const (
	defaultOwnerEmail    = "owner@liberary.app"
	defaultOwnerPassword = "Owner123!"
	defaultLibraryName   = "My Study Library"
)

// CreateDefaultData creates the default owner account and its fee structure
// if no owner exists yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	ownerRepo := appRepos.NewOwnerRepository(dbPool)
	feeRepo := appRepos.NewFeeStructureRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (owner account)...")

	exists, err := ownerRepo.EmailExists(ctx, defaultOwnerEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default owner exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Default owner already exists, skipping creation")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultOwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default owner password")
		return err
	}

	owner := &appModels.Owner{
		Email:        defaultOwnerEmail,
		PasswordHash: string(hashedPassword),
		LibraryName:  defaultLibraryName,
	}
	if err := ownerRepo.Create(ctx, owner); err != nil {
		lgr.Error().Err(err).Msg("Error creating default owner")
		return err
	}

	fees := &appModels.FeeStructure{
		AccountID: owner.ID,
		FullTime:  appModels.DefaultFullTimeFee,
		HalfTime:  appModels.DefaultHalfTimeFee,
	}
	if err := feeRepo.Upsert(ctx, fees); err != nil {
		lgr.Error().Err(err).Msg("Error seeding default fee structure")
		return err
	}

	lgr.Info().Int64("ownerID", owner.ID).Str("email", defaultOwnerEmail).
		Msg("Default owner account created successfully")
	return nil
}
