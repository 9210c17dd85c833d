package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/middleware"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
)

// StudentController handles roster, profile and dashboard operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// Dashboard serves the aggregate stats and recent students
func (c *StudentController) Dashboard(ctx *gin.Context) {
	stats, err := c.studentService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Notice:    helpers.PopNotice(ctx),
		Timestamp: time.Now(),
	})
}

// Profile serves the current identity's data, skills and certifications
func (c *StudentController) Profile(ctx *gin.Context) {
	studentID, _ := middleware.CurrentStudentID(ctx)

	student, err := c.studentService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Notice:    helpers.PopNotice(ctx),
		Timestamp: time.Now(),
	})
}

// EditProfilePage pre-fills the edit-profile form with the current
// identity's data and the skill choices
func (c *StudentController) EditProfilePage(ctx *gin.Context) {
	studentID, _ := middleware.CurrentStudentID(ctx)

	form, err := c.studentService.ProfileFormData(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      form,
		Timestamp: time.Now(),
	})
}

// EditProfile applies a profile edit submission
func (c *StudentController) EditProfile(ctx *gin.Context) {
	studentID, _ := middleware.CurrentStudentID(ctx)

	var form dto.EditProfileForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if err := c.studentService.UpdateProfile(ctx.Request.Context(), studentID, &form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	helpers.RedirectWithNotice(ctx, "/profile", "Profile updated successfully!")
}

// AddStudentPage serves the add-student form data (the skill choices)
func (c *StudentController) AddStudentPage(ctx *gin.Context) {
	choices, err := c.studentService.SkillChoices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"choices": choices},
		Timestamp: time.Now(),
	})
}

// AddStudent creates a student from the roster form. Any authenticated
// student may do this; there is no separate admin role.
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var form dto.StudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if _, err := c.studentService.AddStudent(ctx.Request.Context(), &form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	helpers.RedirectWithNotice(ctx, "/view_students", "Student added successfully!")
}

// ViewStudents serves one page of the student listing
func (c *StudentController) ViewStudents(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	listing, err := c.studentService.ListStudents(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      listing,
		Notice:    helpers.PopNotice(ctx),
		Timestamp: time.Now(),
	})
}

// StudentDetail serves a single student by id
func (c *StudentController) StudentDetail(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}
