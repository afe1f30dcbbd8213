package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/covercell/covercell/internal/auth/blob"
	"github.com/covercell/covercell/internal/auth/domain"
	httpapi "github.com/covercell/covercell/internal/auth/http"
	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/internal/auth/store/drivers/sqlite"
	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/covercell/covercell/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal auth service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	blobs  blob.Storage
	signer *jwtx.HS256

	// Services
	registerService  *service.RegisterService
	loginService     *service.LoginService
	userService      *service.UserService
	quoteService     *service.QuoteService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "covercell-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewHS256(cfg.JWTSecret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initBlobStorage(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	// Seed the staff accounts on a fresh database so the portal is usable
	// before the first customer enrolls.
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.bootstrapService.Bootstrap(ctx); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to bootstrap accounts: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initBlobStorage picks the attachment store for signup images
func (app *Application) initBlobStorage() error {
	switch app.cfg.BlobDriver {
	case "", "disk":
		blobs, err := blob.NewDiskStorage(app.cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize upload dir: %w", err)
		}
		app.blobs = blobs
		app.logger.Info("attachment storage ready", "driver", "disk", "dir", app.cfg.UploadDir)
	case "s3":
		blobs, err := blob.NewS3Storage(context.Background(), blob.S3Config{
			Region:       app.cfg.S3Region,
			Bucket:       app.cfg.S3Bucket,
			AccessKey:    app.cfg.S3AccessKey,
			SecretKey:    app.cfg.S3SecretKey,
			BaseEndpoint: app.cfg.S3BaseEndpoint,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		app.blobs = blobs
		app.logger.Info("attachment storage ready", "driver", "s3", "bucket", app.cfg.S3Bucket)
	default:
		return fmt.Errorf("unknown blob driver %q", app.cfg.BlobDriver)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.registerService = &service.RegisterService{
		Store:  app.db,
		Blobs:  app.blobs,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
	}
	app.loginService = &service.LoginService{
		Store:  app.db,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
	}
	app.userService = &service.UserService{Store: app.db}
	app.quoteService = &service.QuoteService{}

	seeds := service.DefaultSeedAccounts()
	passwords := map[domain.Role]string{
		domain.RoleAdmin:     app.cfg.SeedAdminPassword,
		domain.RoleShopOwner: app.cfg.SeedOwnerPassword,
		domain.RoleEmployee:  app.cfg.SeedEmployeePassword,
	}
	for i := range seeds {
		seeds[i].Password = passwords[seeds[i].Role]
	}
	app.bootstrapService = &service.BootstrapService{
		Store:    app.db,
		Accounts: seeds,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RegisterService = app.registerService
	router.LoginService = app.loginService
	router.UserService = app.userService
	router.QuoteService = app.quoteService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
