package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/services"
	"github.com/amit20042003/Liberary/internal/middleware"
)

// BillingController handles fee payments, due tracking and reminders
type BillingController struct {
	billingService  *services.BillingService
	reminderService *services.ReminderService
	logger          zerolog.Logger
}

// NewBillingController creates a new BillingController
func NewBillingController(
	billingService *services.BillingService,
	reminderService *services.ReminderService,
	logger zerolog.Logger,
) *BillingController {
	return &BillingController{
		billingService:  billingService,
		reminderService: reminderService,
		logger:          logger,
	}
}

// Pay records a fee payment
// @Summary Record a fee payment
// @Description Appends one receipt per covered month and advances the due date by that many calendar months
// @Tags billing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Param request body dto.PaymentRequest true "Payment details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payment"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/payments [post]
func (c *BillingController) Pay(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.billingService.Pay(ctx, ownerID, studentID,
		services.PaymentInput{Amount: req.Amount, Method: req.Method}, req.Months)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	gender, _ := dto.GenderFromTitle(student.Title)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewStudentResponse(student, gender, c.billingService.IsDueNow(student)),
	})
}

// MarkDue forces a student into the fee-due state
// @Summary Mark a student as fee due
// @Description Sets the next due date to yesterday without touching the payment ledger
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/mark-due [post]
func (c *BillingController) MarkDue(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.billingService.MarkDue(ctx, ownerID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	gender, _ := dto.GenderFromTitle(student.Title)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewStudentResponse(student, gender, true),
	})
}

// DueList returns the active students whose fee is overdue
// @Summary List fee-due students
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/due [get]
func (c *BillingController) DueList(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	students, err := c.billingService.DueStudents(ctx, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.StudentListResponse{Students: make([]dto.StudentResponse, 0, len(students)), Total: len(students)}
	for _, student := range students {
		gender, _ := dto.GenderFromTitle(student.Title)
		resp.Students = append(resp.Students, dto.NewStudentResponse(student, gender, true))
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// SendReminders mails the owner a digest of overdue students
// @Summary Send fee-due reminder digest
// @Description Emails the owner a table of students past their due date
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/fee-reminders [post]
func (c *BillingController) SendReminders(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	count, err := c.reminderService.SendFeeDueDigest(ctx, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if count == 0 {
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MessageResponse{Message: "No overdue students, nothing sent"}})
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MessageResponse{Message: "Reminder digest sent"}})
}
