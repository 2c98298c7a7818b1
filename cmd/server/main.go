package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "spacebook-backend/internal/api/http"
	"spacebook-backend/internal/config"
	"spacebook-backend/internal/jobs"
	"spacebook-backend/internal/logger"
	"spacebook-backend/internal/media"
	"spacebook-backend/internal/repository/postgres"
	"spacebook-backend/internal/scheduler"
	"spacebook-backend/internal/security"
	"spacebook-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting SpaceBook Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Media Store
	mediaStore, err := media.NewStore(
		cfg.Media.Root,
		cfg.Media.BranchMaxMB,
		cfg.Media.LibraryMaxMB,
		cfg.Media.SpaceMaxMB,
	)
	if err != nil {
		logger.Error("Failed to initialize media store", "error", err)
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	branchSvc := service.NewBranchService(store.BranchRepository, mediaStore, cfg.Branch.StateCodes)
	campusSvc := service.NewCampusService(store.CampusRepository, store.BranchRepository)
	librarySvc := service.NewLibraryService(store.LibraryRepository, mediaStore)
	spaceSvc := service.NewSpaceService(store.SpaceRepository, store.LibraryRepository, mediaStore)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.SpaceRepository, store.UserRepository, emailSvc)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store, mediaStore, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Initialize Router
	router := httpapi.NewRouter(
		authSvc,
		bookingSvc,
		branchSvc,
		campusSvc,
		librarySvc,
		spaceSvc,
		mediaStore,
		tokenManager,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
