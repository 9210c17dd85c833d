// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/middleware"
	"github.com/skilltrack/skilltrack/internal/pkg/auth"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
)

// AuthController handles login, registration and logout
type AuthController struct {
	authService *services.AuthService
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *auth.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// LoginPage serves the login form data. Already authenticated visitors are
// sent straight to the dashboard.
func (c *AuthController) LoginPage(ctx *gin.Context) {
	if _, ok := middleware.CurrentStudentID(ctx); ok {
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Notice:    helpers.PopNotice(ctx),
		Timestamp: time.Now(),
	})
}

// Login handles a login submission. On success a session cookie is set and
// the visitor is redirected to the intended destination or the dashboard.
func (c *AuthController) Login(ctx *gin.Context) {
	if _, ok := middleware.CurrentStudentID(ctx); ok {
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	student, err := c.authService.Authenticate(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		c.logger.Warn().Str("username", form.Username).Msg("Failed login attempt")
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, lifetime, err := c.sessions.GenerateToken(student.ID, student.Username, form.RememberMe)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to issue session token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.SessionCookie, token, int(lifetime.Seconds()), "/", "", false, true)
	c.logger.Info().Int64("studentID", student.ID).Bool("remember", form.RememberMe).Msg("Student logged in")

	ctx.Redirect(http.StatusSeeOther, safeNext(ctx.Query("next")))
}

// safeNext keeps the post-login redirect inside the site
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	return next
}

// RegisterPage serves the registration form data
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	if _, ok := middleware.CurrentStudentID(ctx); ok {
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Notice:    helpers.PopNotice(ctx),
		Timestamp: time.Now(),
	})
}

// Register handles a registration submission. There is no auto-login; the
// new student is sent to the login page.
func (c *AuthController) Register(ctx *gin.Context) {
	if _, ok := middleware.CurrentStudentID(ctx); ok {
		ctx.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var form dto.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &form); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	helpers.RedirectWithNotice(ctx, "/login", "Registration successful! Please log in.")
}

// Logout invalidates the session cookie and returns to the landing page
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	helpers.RedirectWithNotice(ctx, "/", "You have been logged out.")
}
