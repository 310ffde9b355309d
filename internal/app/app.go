package app

import (
	"fmt"
	"log"
	"time"

	"chronos/internal/config"
	"chronos/internal/handlers"
	"chronos/internal/models"
	"chronos/internal/pdf"
	"chronos/internal/routes"
	"chronos/internal/services"
	"chronos/internal/state"
	"chronos/internal/storage"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "chronos/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === Snapshot store ===
	var store storage.SnapshotStore
	switch cfg.Storage.Backend {
	case "postgres":
		pg, err := storage.NewPostgresStore(cfg.Storage.DSN)
		if err != nil {
			log.Fatal("Failed to open postgres snapshot store: ", err)
		}
		defer func() {
			if err := pg.Close(); err != nil {
				log.Printf("Failed to close snapshot store: %v", err)
			}
		}()
		store = pg
	default:
		store = storage.NewFileStore(cfg.Storage.Path)
	}

	// === State ===
	initial, err := store.Load()
	if err != nil {
		log.Printf("[app] snapshot load failed, using defaults: %v", err)
		initial = nil
	}
	if initial == nil {
		initial = models.DefaultState(time.Now())
	}
	container := state.NewContainer(store, initial)

	// === Services ===
	authService := services.NewAuthService()
	taskService := services.NewTaskService(container)
	billService := services.NewBillService(container)
	reminderService := services.NewReminderService(container, taskService)
	userService := services.NewUserService(container)
	settingsService := services.NewSettingsService(container)
	reportService := services.NewReportService(container)

	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	var tg *services.TelegramService
	if cfg.Telegram.Enabled {
		tg = services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}

	pdfGen := pdf.NewReportGenerator(cfg.Reports.OutputDir)

	// === Timer ===
	timer := services.NewTimerSupervisor(container, time.Second)
	timer.Run()
	defer timer.Shutdown()

	// === Handlers ===
	stateHandler := handlers.NewStateHandler(container)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, container, tg)
	billHandler := handlers.NewBillHandler(billService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	userHandler := handlers.NewUserHandler(userService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService, pdfGen, emailService, tg)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		container,
		authService,
		stateHandler,
		authHandler,
		taskHandler,
		billHandler,
		reminderHandler,
		userHandler,
		settingsHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Dashboard listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
