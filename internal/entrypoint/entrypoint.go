package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/i18n"
)

// ErrSchemaMissing is returned by Run when the tables do not exist and
// automatic migration is disabled.
var ErrSchemaMissing = errors.New("database schema is not installed; run `library migrate` or set DATABASE_AUTO_MIGRATE=true")

func openDatabase(cfg *config.Config) (*database.Database, error) {
	db, err := database.NewDatabase(database.Options{
		Path:         cfg.Database.Path,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogLevel:     cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// Migrate installs the schema. With reset every table is dropped first.
func Migrate(cfg *config.Config, reset bool) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if reset {
		log.Printf("Resetting database at %s, all data will be lost", cfg.Database.Path)
		return db.Reset()
	}
	log.Printf("Migrating database at %s", cfg.Database.Path)
	return db.Migrate()
}

// NewRouter wires repositories on db into the HTTP router.
func NewRouter(db *database.Database, cfg *config.Config, version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore:   books.NewRepository(db.DB),
		AuthorStore: authors.NewRepository(db.DB),
		Database:    db,
		Catalog:     i18n.NewCatalog(cfg.Messages.Language),
		Version:     version,
		AccessLog:   true,
	})
}

func setGinMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		log.Printf("WARNING: unknown GIN_MODE %q, using %s", mode, gin.ReleaseMode)
		gin.SetMode(gin.ReleaseMode)
	}
}

func Run(cfg *config.Config, version string) error {
	log.Printf("Starting Library v%s", version)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if !db.HasSchema() {
		if !cfg.Database.AutoMigrate {
			return ErrSchemaMissing
		}
		log.Printf("Schema missing, migrating because DATABASE_AUTO_MIGRATE is set")
		if err := db.Migrate(); err != nil {
			return err
		}
	}

	setGinMode(cfg.HTTP.GinMode)
	router := NewRouter(db, cfg, version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, router, cfg)
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func Serve(ctx context.Context, router http.Handler, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutdown Server, waiting %v before killing", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}
