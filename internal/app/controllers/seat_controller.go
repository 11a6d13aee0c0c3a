package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/services"
	"github.com/amit20042003/Liberary/internal/middleware"
)

// SeatController exposes the derived seat map
type SeatController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewSeatController creates a new SeatController
func NewSeatController(studentService *services.StudentService, logger zerolog.Logger) *SeatController {
	return &SeatController{
		studentService: studentService,
		logger:         logger,
	}
}

// SeatMap returns the current seat map
// @Summary Get the seat map
// @Description Occupancy is derived from active students at request time. Conflicts flag corrupted data.
// @Tags seats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.SeatMapResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /seats [get]
func (c *SeatController) SeatMap(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	seats, conflicts, err := c.studentService.SeatMap(ctx, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.SeatMapResponse{Seats: make([]dto.SeatResponse, 0, len(seats))}
	for _, seat := range seats {
		resp.Seats = append(resp.Seats, dto.NewSeatResponse(seat))
	}
	for _, conflict := range conflicts {
		resp.Conflicts = append(resp.Conflicts, dto.SlotConflictResponse{
			SeatNumber: conflict.SeatNumber,
			Shift:      string(conflict.Shift),
			HolderID:   conflict.HolderID,
			ClaimantID: conflict.ClaimantID,
		})
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Available lists seats open to a prospective admission
// @Summary List available seats
// @Description Filters by gender section (from title) and plan. Half-time requires the shift parameter.
// @Tags seats
// @Produce json
// @Security ApiKeyAuth
// @Param title query string true "Salutation of the prospective student (Mr., Ms. or Mrs.)"
// @Param admissionType query string true "FULL_TIME or HALF_TIME"
// @Param shift query string false "MORNING or EVENING (half-time only)"
// @Success 200 {object} dto.APIResponse{data=dto.AvailableSeatsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Router /seats/available [get]
func (c *SeatController) Available(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	gender, err := dto.GenderFromTitle(ctx.Query("title"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admissionType := models.AdmissionType(ctx.Query("admissionType"))
	if !admissionType.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "admissionType must be FULL_TIME or HALF_TIME")))
		return
	}

	var shift *models.Shift
	if raw := ctx.Query("shift"); raw != "" {
		s := models.Shift(raw)
		if !s.Valid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "shift must be MORNING or EVENING")))
			return
		}
		shift = &s
	}
	if admissionType == models.AdmissionHalfTime && shift == nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "half-time availability requires a shift")))
		return
	}

	numbers, err := c.studentService.AvailableSeats(ctx, ownerID, gender, admissionType, shift)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.AvailableSeatsResponse{SeatNumbers: numbers}})
}
