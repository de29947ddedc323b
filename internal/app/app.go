package app

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bienesraices/database"
	"bienesraices/internal/auth"
	"bienesraices/internal/config"
	"bienesraices/internal/email"
	"bienesraices/internal/handlers"
	"bienesraices/internal/logger"
	"bienesraices/internal/middleware"
	"bienesraices/internal/repositories"
	"bienesraices/internal/routes"
	"bienesraices/internal/services"
	"bienesraices/internal/storage"
	"bienesraices/internal/validator"
)

// Run boots the application: config, logger, database, migrations,
// seed data and the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
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
	logger.Info("Database connected", "dialect", cfg.Database.Dialect)

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.Seed(gormDB); err != nil {
		logger.Fatal("Failed to seed reference data", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Dialect {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database dialect: %s", cfg.Database.Dialect)
	}
}

// SetupRouter wires repositories, services and handlers around the
// injected database handle and returns the configured gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	files, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer, err := email.NewSMTPProvider(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		BaseURL:      cfg.Server.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(gormDB, files, mailer, jwtManager)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, jwtManager, serviceContainer.AuthService)

	return router
}

func initializeServices(
	gormDB *gorm.DB,
	files storage.Storage,
	mailer email.Provider,
	jwtManager *auth.JWTManager,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	propertyRepo := repositories.NewPropertyRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)

	authService := services.NewAuthService(userRepo, mailer, jwtManager)
	propertyService := services.NewPropertyService(propertyRepo, catalogRepo, messageRepo, files)
	messageService := services.NewMessageService(messageRepo, propertyRepo)

	return &services.ServiceContainer{
		AuthService:     authService,
		PropertyService: propertyService,
		MessageService:  messageService,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	limits := handlers.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &handlers.AppHandlers{
		AppHandler:      handlers.NewAppHandler(baseHandler, container.PropertyService),
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		PropertyHandler: handlers.NewPropertyHandler(baseHandler, container.PropertyService, container.MessageService, limits),
	}
}

// templateFuncs are the helpers the pagination controls need.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"min": func(a int, b int64) int64 {
			if int64(a) < b {
				return int64(a)
			}
			return b
		},
		"iterate": func(n int) []int {
			pages := make([]int, n)
			for i := range pages {
				pages[i] = i
			}
			return pages
		},
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CSRF())

	router.SetFuncMap(templateFuncs())
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/public", "./public")
	// Uploaded images are served straight from the local upload dir.
	if cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return router
}
