package main

import (
	"fmt"
	"log"

	"printflow/internal/config"
	"printflow/internal/handler"
	"printflow/internal/notify/noop"
	"printflow/internal/notify/ses"
	"printflow/internal/port"
	"printflow/internal/repository/postgres"
	"printflow/internal/router"
	"printflow/internal/service"
	s3storage "printflow/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	dossierRepo := postgres.NewDossierRepo(db)
	fileRepo := postgres.NewDossierFileRepo(db)
	devisRepo := postgres.NewDevisRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	activityRepo := postgres.NewActivityRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize notification dispatch
	var dispatcher port.NotificationDispatcher
	switch cfg.Notify.Provider {
	case "ses":
		dispatcher, err = ses.NewSESDispatcher(
			cfg.Notify.Region, cfg.Notify.FromAddress, cfg.Notify.FromName,
			cfg.Notify.FrontendURL, userRepo)
		if err != nil {
			return fmt.Errorf("failed to initialize SES dispatcher: %w", err)
		}
	default:
		dispatcher = noop.NewNoopDispatcher()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	activitySvc := service.NewActivityService(activityRepo)
	dossierSvc := service.NewDossierService(dossierRepo, dispatcher, activitySvc)
	fileSvc := service.NewFileService(fileRepo, s3Client, &cfg.S3, activitySvc)
	devisSvc := service.NewDevisService(devisRepo, dossierRepo, activitySvc)
	paymentSvc := service.NewPaymentService(paymentRepo, activitySvc)
	statsSvc := service.NewStatsService(statsRepo, dossierRepo)
	userSvc := service.NewUserService(userRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc)
	dossierH := handler.NewDossierHandler(dossierSvc)
	fileH := handler.NewFileHandler(fileSvc)
	devisH := handler.NewDevisHandler(devisSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	activityH := handler.NewActivityHandler(activitySvc)
	statsH := handler.NewStatsHandler(statsSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, dossierSvc, cfg.CORS.AllowedOrigins,
		authH, dossierH, fileH, devisH, paymentH, activityH, statsH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
