package app

import (
	"errors"
	"fmt"
	"time"

	"lye_backend/internal/auth"
	"lye_backend/internal/config"
	"lye_backend/internal/email"
	"lye_backend/internal/handlers"
	"lye_backend/internal/logger"
	"lye_backend/internal/middleware"
	"lye_backend/internal/models"
	"lye_backend/internal/repositories"
	"lye_backend/internal/routes"
	"lye_backend/internal/services"
	"lye_backend/internal/storage"
	"lye_backend/internal/validator"
	"lye_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: configuration, database, migrations,
// seed account, HTTP router.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstRoot(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first root user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func autoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 comes from the uuid-ossp extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Investigation{},
		&models.Review{},
		&models.Category{},
	)
}

// SetupRouter builds the whole dependency graph and returns a ready
// gin.Engine. Split out of Run so tests can drive it against their own
// database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer, userRepo := initializeServices(cfg, gormDB, storageInstance, tokenIssuer)

	authGuard := middleware.AuthMiddleware(tokenIssuer, userRepo)
	appHandlers := initializeHandlers(serviceContainer, authGuard)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	if cfg.Storage.Type == "local" {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokenIssuer *auth.TokenIssuer,
) (*services.ServiceContainer, repositories.UserRepository) {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		smtpProvider, err := email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailService = smtpProvider
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured. Outgoing email is logged, not sent.")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	investigationRepo := repositories.NewInvestigationRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)

	uploadService := services.NewUploadService(storageInstance, cfg.Upload.MaxSize)
	authService := services.NewAuthService(userRepo, tokenIssuer, emailService)
	userService := services.NewUserService(userRepo)
	investigationService := services.NewInvestigationService(investigationRepo, uploadService)
	reviewService := services.NewReviewService(reviewRepo, investigationRepo)
	categoryService := services.NewCategoryService(categoryRepo, uploadService, storageInstance)
	statsService := services.NewStatsService(userRepo, investigationRepo, reviewRepo)

	return &services.ServiceContainer{
		AuthService:          authService,
		UserService:          userService,
		InvestigationService: investigationService,
		ReviewService:        reviewService,
		CategoryService:      categoryService,
		StatsService:         statsService,
		UploadService:        uploadService,
		EmailService:         emailService,
	}, userRepo
}

func initializeHandlers(sc *services.ServiceContainer, authGuard gin.HandlerFunc) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:          handlers.NewUserHandler(baseHandler, sc.AuthService, sc.UserService, authGuard),
		WorkHandler:          handlers.NewWorkHandler(baseHandler, sc.InvestigationService),
		InvestigationHandler: handlers.NewInvestigationHandler(baseHandler, sc.InvestigationService),
		ReviewHandler:        handlers.NewReviewHandler(baseHandler, sc.ReviewService),
		CategoryHandler:      handlers.NewCategoryHandler(baseHandler, sc.CategoryService, authGuard),
		StatsHandler:         handlers.NewStatsHandler(baseHandler, sc.StatsService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.Server.Env != "production")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))
	return router
}

// seedFirstRoot guarantees a root account exists on first boot. An
// existing account with the configured email wins; nothing is updated.
func seedFirstRoot(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstRootEmail == "" || cfg.FirstRootPassword == "" {
		logger.Warn("FIRST_ROOT_EMAIL or FIRST_ROOT_PASSWORD is not set. Skipping root seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", cfg.FirstRootEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Root user already exists. Skipping creation.", "email", cfg.FirstRootEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for root user: %w", result.Error)
	}

	hashed, err := auth.HashPassword(cfg.FirstRootPassword)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}

	username := cfg.FirstRootUsername
	if username == "" {
		username = "root"
	}

	newRoot := &models.User{
		FullName:     "Administrador",
		Email:        cfg.FirstRootEmail,
		Username:     username,
		PasswordHash: hashed,
		Role:         models.UserRoleRoot,
		IsActive:     true,
	}
	if err := db.Create(newRoot).Error; err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}

	logger.Info("Created first root user", "email", cfg.FirstRootEmail)
	return nil
}
