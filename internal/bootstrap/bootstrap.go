package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/skilltrack/skilltrack/internal/app/controllers"
	appMigrations "github.com/skilltrack/skilltrack/internal/app/migrations"
	appRepos "github.com/skilltrack/skilltrack/internal/app/repositories"
	appRoutes "github.com/skilltrack/skilltrack/internal/app/routes"
	appServices "github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/config"
	"github.com/skilltrack/skilltrack/internal/db"
	appMiddleware "github.com/skilltrack/skilltrack/internal/middleware"
	pkgAuth "github.com/skilltrack/skilltrack/internal/pkg/auth"
	"github.com/skilltrack/skilltrack/internal/pkg/logger"
	"github.com/skilltrack/skilltrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService             *appServices.AuthService
	StudentService          *appServices.StudentService
	SkillService            *appServices.SkillService
	CertificationService    *appServices.CertificationService
	AuthController          *appControllers.AuthController
	StudentController       *appControllers.StudentController
	SkillController         *appControllers.SkillController
	CertificationController *appControllers.CertificationController
	AuthMiddleware          *appMiddleware.AuthMiddleware
	Repos                   *appRepos.Repositories
	SessionService          *pkgAuth.SessionService
	Logger                  zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default skill/course catalogs.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed reference data after migrations; safe on every start
	skillRepo := appRepos.NewSkillRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	if err := seed.CreateDefaultData(context.Background(), skillRepo, courseRepo, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		SessionExp:  cfg.SessionExp(),
		RememberExp: cfg.RememberExp(),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, lgr)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.SkillRepository,
		deps.Repos.CertificationRepository,
		lgr,
	)
	deps.SkillService = appServices.NewSkillService(deps.Repos.SkillRepository)
	deps.CertificationService = appServices.NewCertificationService(deps.Repos.CertificationRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.SkillController = appControllers.NewSkillController(deps.SkillService)
	deps.CertificationController = appControllers.NewCertificationController(deps.CertificationService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.SkillController,
		deps.CertificationController,
		deps.AuthMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
