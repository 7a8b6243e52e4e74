package app

import (
	"fmt"
	"time"

	"jobportal/internal/config"
	"jobportal/internal/email"
	"jobportal/internal/handlers"
	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/routes"
	"jobportal/internal/services"
	"jobportal/internal/session"
	"jobportal/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
		// Deletes do not cascade anywhere in this schema; orphaned rows are
		// accepted, so no FK constraints are created.
		DisableForeignKeyConstraintWhenMigrating: true,
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

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate creates the schema for all portal models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Review{},
		&models.Upvote{},
		&models.Experience{},
	)
}

// SetupRouter wires services, handlers and routes onto a gin engine.
// Tests call this directly against their own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	sessions := session.NewManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, sessions)

	ginRouter := initializeGinRouter(gormDB, sessions)
	ginRouter.LoadHTMLGlob(cfg.Templates.Glob)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	templates, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}
	emailProvider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, templates)

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	reviewRepo := repositories.NewReviewRepository()
	upvoteRepo := repositories.NewUpvoteRepository()
	experienceRepo := repositories.NewExperienceRepository()

	notificationService := services.NewNotificationService(emailProvider, userRepo)
	authService := services.NewAuthService(userRepo, notificationService)
	jobService := services.NewJobService(jobRepo, applicationRepo, notificationService)
	reviewService := services.NewReviewService(reviewRepo, upvoteRepo)
	userService := services.NewUserService(userRepo)
	experienceService := services.NewExperienceService(experienceRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		JobService:          jobService,
		ReviewService:       reviewService,
		UserService:         userService,
		ExperienceService:   experienceService,
		NotificationService: notificationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer, sessions *session.Manager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, sessions)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		PageHandler:       handlers.NewPageHandler(baseHandler, container.ReviewService),
		JobHandler:        handlers.NewJobHandler(baseHandler, container.JobService),
		ReviewHandler:     handlers.NewReviewHandler(baseHandler, container.ReviewService),
		UserHandler:       handlers.NewUserHandler(baseHandler, container.UserService),
		ExperienceHandler: handlers.NewExperienceHandler(baseHandler, container.ExperienceService),
	}
}

func initializeGinRouter(db *gorm.DB, sessions *session.Manager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionInfo(sessions))
	return router
}
