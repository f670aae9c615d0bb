package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"

	"patternshelf/app/controller"
	"patternshelf/app/middleware"
	"patternshelf/app/router"
	"patternshelf/config"
	"patternshelf/db"
	"patternshelf/models"
	"patternshelf/repository"
	"patternshelf/scraper"
	"patternshelf/service"
)

// Initialize connects to the database, wires repositories, services and
// controllers together and registers the HTTP routes. The returned handle
// should be closed on shutdown.
func Initialize(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	patternRepo := repository.NewPatternRepository(conn)
	pdfRepo := repository.NewPatternPDFRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	authService := service.NewAuthService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessExpirySec)*time.Second,
		time.Duration(cfg.JWTRefreshExpirySec)*time.Second,
	)
	imageService := service.NewImageService()

	fetcher := scraper.NewFetcher(scraper.DefaultFetchTimeout)
	reconciler := scraper.NewReconciler(fetcher, patternRepo, imageService)

	// Drive import is optional: without credentials the endpoint reports
	// itself as unconfigured instead of failing startup.
	var importService service.ImportServiceInterface
	if cfg.GoogleCredentials != "" {
		driveService, err := service.NewDriveService(cfg.GoogleCredentials)
		if err != nil {
			conn.Close()
			return nil, err
		}
		importService = service.NewImportService(driveService, patternRepo, pdfRepo)
	} else {
		log.Info().Msg("GOOGLE_APPLICATION_CREDENTIALS not set, Drive PDF import disabled")
	}

	if err := ensureAdminUser(ctx, cfg, userRepo, authService); err != nil {
		conn.Close()
		return nil, err
	}

	controllers := &router.Controllers{
		Auth:       controller.NewAuthController(userRepo, authService),
		Pattern:    controller.NewPatternController(patternRepo, pdfRepo, imageService),
		PatternPDF: controller.NewPatternPDFController(pdfRepo, patternRepo),
		Scrape:     controller.NewScrapeController(reconciler),
		Import:     controller.NewImportController(importService, userRepo),
	}
	authMW := middleware.NewAuthMiddleware(authService)

	router.SetupRoutes(controllers, authMW)

	return conn, nil
}

// ensureAdminUser creates the bootstrap admin account when the ADMIN_*
// variables are set and the username is not taken yet.
func ensureAdminUser(ctx context.Context, cfg *config.Config, users repository.UserRepositoryInterface, auth service.AuthServiceInterface) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" || cfg.AdminEmail == "" {
		return nil
	}

	existing, err := users.FindByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin, err := users.Insert(ctx, &models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("bootstrap admin user created")
	return nil
}
