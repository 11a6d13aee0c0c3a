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

// LifecycleController handles departures and reactivations
type LifecycleController struct {
	lifecycleService *services.LifecycleService
	billingService   *services.BillingService
	logger           zerolog.Logger
}

// NewLifecycleController creates a new LifecycleController
func NewLifecycleController(
	lifecycleService *services.LifecycleService,
	billingService *services.BillingService,
	logger zerolog.Logger,
) *LifecycleController {
	return &LifecycleController{
		lifecycleService: lifecycleService,
		billingService:   billingService,
		logger:           logger,
	}
}

// DepartureResponse pairs the departed record with the credited one, when a
// transfer applied
type DepartureResponse struct {
	Departed dto.StudentResponse  `json:"departed"`
	Credited *dto.StudentResponse `json:"credited,omitempty"`
}

// Depart closes out a student
// @Summary Depart a student
// @Description Frees the seat and optionally transfers remaining prepaid days to another active student
// @Tags lifecycle
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Param request body dto.DepartureRequest true "Departure details"
// @Success 200 {object} dto.APIResponse{data=controllers.DepartureResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid transfer target"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already departed"
// @Router /students/{studentId}/depart [post]
func (c *LifecycleController) Depart(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.DepartureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.lifecycleService.Depart(ctx, ownerID, studentID, req.Reason, req.TransferToStudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := DepartureResponse{Departed: c.toResponse(result.Departed)}
	if result.Credited != nil {
		credited := c.toResponse(result.Credited)
		resp.Credited = &credited
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Reactivate returns a departed student to a seat
// @Summary Reactivate a departed student
// @Description Places the student on a fully free seat. The payment ledger is untouched.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Param request body dto.ReactivationRequest true "New seat"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Seat not fully free"
// @Router /students/{studentId}/reactivate [post]
func (c *LifecycleController) Reactivate(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ReactivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.lifecycleService.Reactivate(ctx, ownerID, studentID, req.SeatNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.toResponse(student)})
}

func (c *LifecycleController) toResponse(student *models.Student) dto.StudentResponse {
	gender, _ := dto.GenderFromTitle(student.Title)
	return dto.NewStudentResponse(student, gender, c.billingService.IsDueNow(student))
}
