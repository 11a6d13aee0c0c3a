package dto

import "github.com/amit20042003/Liberary/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a library owner registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	LibraryName string `json:"libraryName" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// OwnerResponse represents the owner account attached to a session
type OwnerResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	LibraryName string `json:"libraryName"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	Owner OwnerResponse `json:"owner"`
}

// NewOwnerResponse maps an owner model to its response form
func NewOwnerResponse(owner *models.Owner) OwnerResponse {
	return OwnerResponse{
		ID:          owner.ID,
		Email:       owner.Email,
		LibraryName: owner.LibraryName,
	}
}
