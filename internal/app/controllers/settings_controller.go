package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/services"
	"github.com/amit20042003/Liberary/internal/middleware"
)

// SettingsController handles per-account fee rates
type SettingsController struct {
	settingsService *services.SettingsService
	logger          zerolog.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService, logger zerolog.Logger) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetFees returns the rates in force
// @Summary Get fee structure
// @Tags settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeeStructureResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/fees [get]
func (c *SettingsController) GetFees(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	fees, err := c.settingsService.GetFeeStructure(ctx, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewFeeStructureResponse(fees)})
}

// UpdateFees stores new monthly rates
// @Summary Update fee structure
// @Description New rates apply to future admissions only; existing students keep their captured fee
// @Tags settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.FeeStructureRequest true "New rates"
// @Success 200 {object} dto.APIResponse{data=dto.FeeStructureResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid rates"
// @Router /settings/fees [put]
func (c *SettingsController) UpdateFees(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	var req dto.FeeStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fees, err := c.settingsService.UpdateFeeStructure(ctx, ownerID, req.FullTime, req.HalfTime)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("accountId", ownerID).Int64("fullTime", req.FullTime).
		Int64("halfTime", req.HalfTime).Msg("Fee structure updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewFeeStructureResponse(fees)})
}
