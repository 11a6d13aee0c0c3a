package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/app/models/dto"
	"github.com/amit20042003/Liberary/internal/app/services"
	"github.com/amit20042003/Liberary/internal/middleware"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
	"github.com/amit20042003/Liberary/internal/pkg/filestorage"
	"github.com/amit20042003/Liberary/internal/pkg/validation"
)

// studentIDParam reads and validates the studentId path parameter. On a
// malformed ID it writes the error response and returns false.
func studentIDParam(ctx *gin.Context) (string, bool) {
	id := ctx.Param("studentId")
	if !validation.IsValidStudentID(id) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentId must look like S001")))
		return "", false
	}
	return id, true
}

// StudentController handles admissions and student record operations
type StudentController struct {
	studentService *services.StudentService
	billingService *services.BillingService
	fileStorage    filestorage.FileStorage
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	billingService *services.BillingService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		billingService: billingService,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// Admit handles a new student admission
// @Summary Admit a new student
// @Description Creates a student on a chosen seat. Multipart form; the photo file is required.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Salutation (Mr., Ms. or Mrs.)"
// @Param name formData string true "Full name"
// @Param fatherName formData string false "Father's name"
// @Param mobile formData string true "Mobile number"
// @Param admissionType formData string true "FULL_TIME or HALF_TIME"
// @Param shift formData string false "MORNING or EVENING (half-time only)"
// @Param seatNumber formData int true "Chosen seat number"
// @Param admissionDate formData string true "Admission date (YYYY-MM-DD)"
// @Param photo formData file true "Student photo"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Seat not available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Admit(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	var req dto.AdmissionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	gender, err := dto.GenderFromTitle(req.Title)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admissionDate, err := time.Parse(dto.DateFormat, req.AdmissionDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "admissionDate must be YYYY-MM-DD")))
		return
	}

	photoFile, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewMissingFieldError("photo"))
		return
	}
	photoURL, err := c.fileStorage.SaveFileWithPath(photoFile, "students")
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to store student photo")
		middleware.HandleAPIError(ctx, err)
		return
	}

	var shift *models.Shift
	if req.Shift != nil {
		s := models.Shift(*req.Shift)
		shift = &s
	}

	student, err := c.studentService.Admit(ctx, ownerID, services.AdmissionInput{
		Title:         req.Title,
		Name:          req.Name,
		FatherName:    req.FatherName,
		Mobile:        req.Mobile,
		PhotoURL:      photoURL,
		Gender:        gender,
		AdmissionType: models.AdmissionType(req.AdmissionType),
		Shift:         shift,
		SeatNumber:    req.SeatNumber,
		AdmissionDate: admissionDate,
	})
	if err != nil {
		// The admission failed, the stored photo has no record pointing at it
		_ = c.fileStorage.DeleteFile(photoURL)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: c.toResponse(student)})
}

// List returns the account's students
// @Summary List students
// @Description Lists students, optionally filtered by status or a search term matching name, mobile or public ID
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(ACTIVE, DEPARTED)
// @Param q query string false "Search term (name, mobile or public ID fragment)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	var status *models.StudentStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.StudentStatus(raw)
		if s != models.StatusActive && s != models.StatusDeparted {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "status must be ACTIVE or DEPARTED")))
			return
		}
		status = &s
	}

	var students []*models.Student
	var err error
	term := ctx.Query("q")
	if term != "" {
		students, err = c.studentService.Search(ctx, ownerID, term)
	} else {
		students, err = c.studentService.List(ctx, ownerID, status)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The search query is status-agnostic; apply the filter here
	if term != "" && status != nil {
		filtered := students[:0]
		for _, student := range students {
			if student.Status == *status {
				filtered = append(filtered, student)
			}
		}
		students = filtered
	}

	resp := dto.StudentListResponse{Students: make([]dto.StudentResponse, 0, len(students)), Total: len(students)}
	for _, student := range students {
		resp.Students = append(resp.Students, c.toResponse(student))
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Get returns one student by public ID
// @Summary Get a student
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID" example(S014)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx, ownerID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.toResponse(student)})
}

// Update edits a student's contact details
// @Summary Update student details
// @Description Edits contact fields only. Seat, plan and ledger change through their own operations.
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Param request body dto.UpdateStudentRequest true "Updated details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.UpdateDetails(ctx, ownerID, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.toResponse(student)})
}

// UploadPhoto replaces a student's photo
// @Summary Upload student photo
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Param photo formData file true "Student photo"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "No photo supplied"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/photo [put]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	photoFile, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewMissingFieldError("photo"))
		return
	}

	student, err := c.studentService.Get(ctx, ownerID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	oldPhotoURL := student.PhotoURL

	photoURL, err := c.fileStorage.SaveFileWithPath(photoFile, "students")
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to store student photo")
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err = c.studentService.SetPhoto(ctx, ownerID, studentID, photoURL)
	if err != nil {
		_ = c.fileStorage.DeleteFile(photoURL)
		middleware.HandleAPIError(ctx, err)
		return
	}

	if oldPhotoURL != "" {
		_ = c.fileStorage.DeleteFile(oldPhotoURL)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.toResponse(student)})
}

// Delete removes a student record permanently
// @Summary Delete a student
// @Description Removes the record and its photo. The seat frees up implicitly.
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param studentId path string true "Public student ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx, ownerID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.Delete(ctx, ownerID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if student.PhotoURL != "" {
		_ = c.fileStorage.DeleteFile(student.PhotoURL)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MessageResponse{Message: "Student deleted"}})
}

// Dashboard returns the owner's at-a-glance numbers
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	ownerID, _ := middleware.OwnerID(ctx)

	resp, err := c.studentService.Dashboard(ctx, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

func (c *StudentController) toResponse(student *models.Student) dto.StudentResponse {
	gender, _ := dto.GenderFromTitle(student.Title)
	return dto.NewStudentResponse(student, gender, c.billingService.IsDueNow(student))
}
