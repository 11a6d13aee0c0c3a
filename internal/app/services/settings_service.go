package services

import (
	"context"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/repositories"
)

// SettingsService handles per-account fee rates
type SettingsService struct {
	feeRepo *repositories.FeeStructureRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(feeRepo *repositories.FeeStructureRepository) *SettingsService {
	return &SettingsService{
		feeRepo: feeRepo,
	}
}

// GetFeeStructure returns the rates in force for an account
func (s *SettingsService) GetFeeStructure(ctx context.Context, accountID int64) (*models.FeeStructure, error) {
	return s.feeRepo.GetByAccount(ctx, accountID)
}

// UpdateFeeStructure stores new rates. Existing students keep the fee amount
// captured on their record; only future admissions pick up the change.
func (s *SettingsService) UpdateFeeStructure(ctx context.Context, accountID int64, fullTime, halfTime int64) (*models.FeeStructure, error) {
	fees := &models.FeeStructure{
		AccountID: accountID,
		FullTime:  fullTime,
		HalfTime:  halfTime,
	}
	if err := s.feeRepo.Upsert(ctx, fees); err != nil {
		return nil, err
	}
	return fees, nil
}
