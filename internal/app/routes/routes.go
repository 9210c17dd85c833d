package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skilltrack/skilltrack/internal/app/controllers"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/middleware"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	skillController *controllers.SkillController,
	certificationController *controllers.CertificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Every route sees the identity context when a session token is present;
	// the protected group additionally requires one.
	router.Use(authMiddleware.Identify())

	// --- Public routes ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"page": "home"},
			Notice:    helpers.PopNotice(c),
			Timestamp: time.Now(),
		})
	})

	router.GET("/login", authController.LoginPage)
	router.POST("/login", authController.Login)
	router.GET("/register", authController.RegisterPage)
	router.POST("/register", authController.Register)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/logout", authController.Logout)
		authenticated.GET("/dashboard", studentController.Dashboard)

		authenticated.GET("/profile", studentController.Profile)
		authenticated.GET("/edit_profile", studentController.EditProfilePage)
		authenticated.POST("/edit_profile", studentController.EditProfile)

		authenticated.GET("/add_student", studentController.AddStudentPage)
		authenticated.POST("/add_student", studentController.AddStudent)
		authenticated.GET("/view_students", studentController.ViewStudents)
		authenticated.GET("/student/:id", studentController.StudentDetail)

		authenticated.GET("/skills_by_course", skillController.SkillsByCourse)

		authenticated.GET("/add_certification", certificationController.AddCertificationPage)
		authenticated.POST("/add_certification", certificationController.AddCertification)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
