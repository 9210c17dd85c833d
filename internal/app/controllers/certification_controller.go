package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/middleware"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
	"github.com/skilltrack/skilltrack/internal/pkg/validation"
)

// CertificationController handles certification recording
type CertificationController struct {
	certService *services.CertificationService
	logger      zerolog.Logger
}

// NewCertificationController creates a new CertificationController
func NewCertificationController(certService *services.CertificationService, logger zerolog.Logger) *CertificationController {
	return &CertificationController{
		certService: certService,
		logger:      logger,
	}
}

// AddCertificationPage serves the add-certification form data
func (c *CertificationController) AddCertificationPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"dateFormat": validation.DateFormat},
		Timestamp: time.Now(),
	})
}

// AddCertification records a certification for the current identity.
// issue_date must parse as a calendar date; expiry_date is optional and is
// not required to follow issue_date.
func (c *CertificationController) AddCertification(ctx *gin.Context) {
	studentID, _ := middleware.CurrentStudentID(ctx)

	var form dto.CertificationForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	fieldErrors := dto.NewValidationErrors()

	issueDate, err := validation.ParseDate(form.IssueDate)
	if err != nil {
		fieldErrors.AddError("issue_date", "issue_date must be a valid date (YYYY-MM-DD)")
	}

	var expiryDate *time.Time
	if form.ExpiryDate != "" {
		parsed, err := validation.ParseDate(form.ExpiryDate)
		if err != nil {
			fieldErrors.AddError("expiry_date", "expiry_date must be a valid date (YYYY-MM-DD)")
		} else {
			expiryDate = &parsed
		}
	}

	if fieldErrors.HasErrors() {
		ctx.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	if _, err := c.certService.AddCertification(ctx.Request.Context(), studentID, &form, issueDate, expiryDate); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	helpers.RedirectWithNotice(ctx, "/profile", "Certification added successfully!")
}
