package main

import (
	"fmt"
	"log"

	"gestdoc/internal/config"
	"gestdoc/internal/handler"
	"gestdoc/internal/recognizer"
	"gestdoc/internal/repository/postgres"
	"gestdoc/internal/router"
	"gestdoc/internal/service"
	s3storage "gestdoc/internal/storage/s3"
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
	companyRepo := postgres.NewCompanyRepo(db)
	representativeRepo := postgres.NewRepresentativeRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)

	// Initialize storage and recognition
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	ocrClient := recognizer.NewTesseractClient(&cfg.OCR)

	maxUploadSize := cfg.S3.MaxFileSizeMB * 1024 * 1024

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	companySvc := service.NewCompanyService(companyRepo)
	representativeSvc := service.NewRepresentativeService(representativeRepo, companyRepo)
	templateSvc := service.NewTemplateService(templateRepo, s3Client, cfg.S3.Bucket, maxUploadSize, cfg.S3.PresignExpiry)
	extractionSvc := service.NewExtractionService(ocrClient, cfg.OCR.Language, maxUploadSize)
	documentSvc := service.NewDocumentService(
		companyRepo, representativeRepo, templateRepo, documentRepo,
		s3Client, extractionSvc, cfg.S3.Bucket, cfg.S3.PresignExpiry)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	extractionH := handler.NewExtractionHandler(extractionSvc)
	documentH := handler.NewDocumentHandler(documentSvc, companySvc, templateSvc)
	companyH := handler.NewCompanyHandler(companySvc, representativeSvc)
	representativeH := handler.NewRepresentativeHandler(representativeSvc)
	templateH := handler.NewTemplateHandler(templateSvc)
	placeholderH := handler.NewPlaceholderHandler()
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, extractionH, documentH, companyH, representativeH,
		templateH, placeholderH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
