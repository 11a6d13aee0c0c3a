package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/amit20042003/Liberary/docs" // Import generated swagger docs
	appControllers "github.com/amit20042003/Liberary/internal/app/controllers"
	appMigrations "github.com/amit20042003/Liberary/internal/app/migrations"
	"github.com/amit20042003/Liberary/internal/app/models"
	appRepos "github.com/amit20042003/Liberary/internal/app/repositories"
	appRoutes "github.com/amit20042003/Liberary/internal/app/routes"
	appServices "github.com/amit20042003/Liberary/internal/app/services"
	"github.com/amit20042003/Liberary/internal/config"
	"github.com/amit20042003/Liberary/internal/db"
	appMiddleware "github.com/amit20042003/Liberary/internal/middleware"
	pkgAuth "github.com/amit20042003/Liberary/internal/pkg/auth"
	"github.com/amit20042003/Liberary/internal/pkg/email"
	"github.com/amit20042003/Liberary/internal/pkg/filestorage"
	"github.com/amit20042003/Liberary/internal/pkg/helpers"
	"github.com/amit20042003/Liberary/internal/pkg/logger"
	"github.com/amit20042003/Liberary/internal/pkg/validation"
	"github.com/amit20042003/Liberary/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	BillingService      *appServices.BillingService
	LifecycleService    *appServices.LifecycleService
	SettingsService     *appServices.SettingsService
	ReminderService     *appServices.ReminderService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	SeatController      *appControllers.SeatController
	BillingController   *appControllers.BillingController
	LifecycleController *appControllers.LifecycleController
	SettingsController  *appControllers.SettingsController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	EmailService        email.EmailService
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
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

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize File Storage
	// Configure baseURL to match the static file serving endpoint
	var err error
	baseURL := cfg.Storage.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
	}
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	layout := models.SeatLayout{
		Count:            cfg.Library.SeatCount,
		GirlSeatsThrough: cfg.Library.GirlSeatsThrough,
	}

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.OwnerRepository,
		deps.Repos.FeeStructureRepository,
		deps.JWTService,
		deps.EmailService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.FeeStructureRepository,
		layout,
		lgr,
	)
	deps.BillingService = appServices.NewBillingService(deps.Repos.StudentRepository, lgr)
	deps.LifecycleService = appServices.NewLifecycleService(deps.Repos.StudentRepository, layout, lgr)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.FeeStructureRepository)
	deps.ReminderService = appServices.NewReminderService(
		deps.BillingService,
		deps.Repos.OwnerRepository,
		deps.EmailService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.BillingService, deps.FileStorage, lgr)
	deps.SeatController = appControllers.NewSeatController(deps.StudentService, lgr)
	deps.BillingController = appControllers.NewBillingController(deps.BillingService, deps.ReminderService, lgr)
	deps.LifecycleController = appControllers.NewLifecycleController(deps.LifecycleService, deps.BillingService, lgr)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomValidations(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validations")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SeatController,
		deps.BillingController,
		deps.LifecycleController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
