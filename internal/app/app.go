package app

import (
	"fmt"

	"skillpilot_backend/database"
	"skillpilot_backend/internal/ai"
	"skillpilot_backend/internal/config"
	"skillpilot_backend/internal/handlers"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/middleware"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/routes"
	"skillpilot_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads the configuration, connects to the database, runs migrations
// and starts the HTTP server. It does not return on success.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine: middleware chain, services,
// handlers and routes. Tests call this directly against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := handlers.NewAppHandlers(cfg, serviceContainer)

	router := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(router, appHandlers)

	return router
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var aiProvider ai.Provider
	if cfg.AI.APIKey == "" {
		logger.Warn("No AI API key configured. Using mock AI provider.")
		aiProvider = &MockAIProvider{}
	} else {
		provider, err := ai.NewOpenAIProvider(cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			logger.Fatal("Failed to initialize AI provider", "error", err)
		}
		aiProvider = provider
	}

	userRepo := repositories.NewUserRepository()
	projectRepo := repositories.NewProjectRepository()
	chatRepo := repositories.NewChatRepository()

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, aiProvider)
	taskService := services.NewTaskService(projectRepo)
	chatService := services.NewChatService(chatRepo, projectRepo, aiProvider)
	recruiterService := services.NewRecruiterService(userRepo, projectRepo, aiProvider)
	portfolioService := services.NewPortfolioService(userRepo, projectRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		UserService:      userService,
		ProjectService:   projectService,
		TaskService:      taskService,
		ChatService:      chatService,
		RecruiterService: recruiterService,
		PortfolioService: portfolioService,
		AIProvider:       aiProvider,
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))
	router.Use(middleware.DBMiddleware(db))
	return router
}
