package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/repositories"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
	"github.com/amit20042003/Liberary/internal/pkg/auth"
	"github.com/amit20042003/Liberary/internal/pkg/email"
)

// AuthService handles owner account registration and login
type AuthService struct {
	ownerRepo    *repositories.OwnerRepository
	feeRepo      *repositories.FeeStructureRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	ownerRepo *repositories.OwnerRepository,
	feeRepo *repositories.FeeStructureRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		ownerRepo:    ownerRepo,
		feeRepo:      feeRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

// Register creates a new library owner account and seeds its fee structure
// with the default rates
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.ownerRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	owner := &models.Owner{
		Email:        email,
		PasswordHash: hash,
		LibraryName:  strings.TrimSpace(req.LibraryName),
	}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	fees := &models.FeeStructure{
		AccountID: owner.ID,
		FullTime:  models.DefaultFullTimeFee,
		HalfTime:  models.DefaultHalfTimeFee,
	}
	if err := s.feeRepo.Upsert(ctx, fees); err != nil {
		s.logger.Error().Err(err).Int64("ownerId", owner.ID).Msg("Failed to seed fee structure")
		return nil, err
	}

	// Registration already succeeded; a failed mail only gets logged
	if err := s.emailService.SendWelcomeEmail(owner.Email, owner.LibraryName); err != nil {
		s.logger.Warn().Err(err).Int64("ownerId", owner.ID).Msg("Failed to send welcome email")
	}

	s.logger.Info().Int64("ownerId", owner.ID).Str("email", email).Msg("Owner account registered")
	return s.buildAuthResponse(owner)
}

// Login authenticates an owner and issues a session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	owner, err := s.ownerRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrOwnerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(owner.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(owner)
}

// GetOwner returns the account behind a session
func (s *AuthService) GetOwner(ctx context.Context, ownerID int64) (*models.Owner, error) {
	return s.ownerRepo.GetByID(ctx, ownerID)
}

func (s *AuthService) buildAuthResponse(owner *models.Owner) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(owner)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Owner: dto.NewOwnerResponse(owner),
	}, nil
}
