package dto

import (
	"time"

	"github.com/amit20042003/Liberary/internal/app/models"
)

// FeeStructureRequest represents updated monthly fee rates. Changes apply to
// future admissions only.
type FeeStructureRequest struct {
	FullTime int64 `json:"fullTime" binding:"required,min=1" example:"1200"`
	HalfTime int64 `json:"halfTime" binding:"required,min=1" example:"600"`
}

// FeeStructureResponse represents the monthly fee rates in force
type FeeStructureResponse struct {
	FullTime  int64      `json:"fullTime" example:"1200"`
	HalfTime  int64      `json:"halfTime" example:"600"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewFeeStructureResponse maps a fee structure model to its response form
func NewFeeStructureResponse(fees *models.FeeStructure) FeeStructureResponse {
	resp := FeeStructureResponse{
		FullTime: fees.FullTime,
		HalfTime: fees.HalfTime,
	}
	if !fees.UpdatedAt.IsZero() {
		t := fees.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
