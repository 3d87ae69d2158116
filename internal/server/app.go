// Package server initializes and runs the SnippetFlow application server.
// It opens the database, applies migrations, wires services and the HTTP
// surface, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dberzins/snippetflow/internal/logging"
	"github.com/dberzins/snippetflow/internal/server/config"
	"github.com/dberzins/snippetflow/internal/server/graphqlapi"
	"github.com/dberzins/snippetflow/internal/server/httpapi"
	"github.com/dberzins/snippetflow/internal/server/repositories/repomanager"
	"github.com/dberzins/snippetflow/internal/server/scoring"
	"github.com/dberzins/snippetflow/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	scoringClient, err := scoring.NewSageMakerClient(ctx, cfg.AWSRegion, cfg.SageMakerEndpointName)
	if err != nil {
		return nil, fmt.Errorf("scoring client init error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	snippetService := services.NewSnippetService(db, rm)
	recommendationService := services.NewRecommendationService(scoringClient, logger)

	graphqlHandler := graphqlapi.NewHandler(snippetService, recommendationService)
	router := httpapi.NewRouter(logger, userService, graphqlHandler, cfg.CORSOrigin)

	return &App{config: cfg, logger: logger, db: db, handler: router}, nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives,
// then shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	server := &http.Server{
		Addr:         app.config.HTTPAddr,
		Handler:      app.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.HTTPAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return app.db.Close()
}
