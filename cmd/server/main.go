package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "shipperd-backend/internal/api/http"
	"shipperd-backend/internal/config"
	"shipperd-backend/internal/jobs"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository/postgres"
	"shipperd-backend/internal/scheduler"
	"shipperd-backend/internal/security"
	"shipperd-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Shipperd Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Notifier
	notifier := service.NewSendGridNotifier(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	provisioner := service.NewLockerProvisioner(store.WarehouseRepository, store.LockerTxRunner)
	authSvc := service.NewAuthService(store.UserRepository, store.TokenRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.LockerRepository, provisioner, notifier)
	warehouseSvc := service.NewWarehouseService(store.WarehouseRepository)
	itemSvc := service.NewItemService(store.ItemRepository, store.StatusLogRepository)
	boxSvc := service.NewBoxService(store.BoxRepository, store.ItemRepository, store.StatusLogRepository)
	orderSvc := service.NewOrderService(store.OrderRepository)
	requestSvc := service.NewRequestService(store.RequestRepository)
	statsSvc := service.NewStatsService(store.BoxRepository, store.UserRepository)
	historySvc := service.NewHistoryService(store.StatusLogRepository)

	// Initialize HTTP handlers and router
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:      authMiddleware,
		AuthH:     httpapi.NewAuthHandler(authSvc, userSvc),
		Dashboard: httpapi.NewDashboardHandler(statsSvc, boxSvc, itemSvc, userSvc),
		Admin: httpapi.NewAdminHandler(
			userSvc, warehouseSvc, itemSvc, boxSvc, orderSvc, requestSvc, historySvc,
		),
	})

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
