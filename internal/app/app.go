// Package app wires configuration, logging, storage, services, and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres"
	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres/visualization"
	"github.com/griederer/ai-visualization-gallery/internal/adapter/provider/claude"
	"github.com/griederer/ai-visualization-gallery/internal/config"
	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/service/gallery"
	"github.com/griederer/ai-visualization-gallery/internal/service/generation"
	"github.com/griederer/ai-visualization-gallery/internal/transport/middleware"
	"github.com/griederer/ai-visualization-gallery/internal/transport/rest"
)

// GalleryStore adapts the concrete repository to the gallery service's
// store interface, narrowing Subscribe's concrete subscription type to the
// service-level one.
type GalleryStore struct {
	*visualization.Repo
}

func (s GalleryStore) Subscribe(
	ctx context.Context,
	f domain.VisualizationFilter,
	onData func([]domain.Visualization),
	onError func(error),
) (gallery.Subscription, error) {
	return s.Repo.Subscribe(ctx, f, onData, onError)
}

// Run is the application entry point. It loads configuration, applies
// pending migrations, wires the services, and serves HTTP until ctx is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := visualization.New(pool).
		WithListLimits(cfg.Gallery.DefaultListLimit, cfg.Gallery.MaxListLimit)
	if cfg.Database.ServerSideQueries {
		repo = repo.WithServerSideQueries()
	}

	var genSvc *generation.Service
	llm, err := claude.New(cfg.LLM)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		logger.Warn("LLM_API_KEY is not set, generation endpoints will refuse requests")
		genSvc = generation.NewService(logger, claude.Disabled{}, cfg.LLM.Timeout)
	case err != nil:
		return fmt.Errorf("init anthropic client: %w", err)
	default:
		genSvc = generation.NewService(logger, llm, cfg.LLM.Timeout)
	}

	gallerySvc := gallery.NewService(logger, GalleryStore{repo}, genSvc)

	generateHandler := rest.NewGenerateHandler(genSvc, logger)
	visHandler := rest.NewVisualizationHandler(gallerySvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()
	// Only the generation routes are budgeted: each request costs an
	// upstream model call.
	limitGen := limiter.Limit(cfg.Server.RatePerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /api/v1/generate", limitGen(http.HandlerFunc(generateHandler.Generate)))
	mux.Handle("POST /api/v1/visualizations", limitGen(http.HandlerFunc(visHandler.Create)))
	mux.HandleFunc("GET /api/v1/visualizations", visHandler.List)
	mux.HandleFunc("GET /api/v1/visualizations/latest", visHandler.Latest)
	mux.HandleFunc("GET /api/v1/visualizations/watch", visHandler.Watch)
	mux.HandleFunc("GET /api/v1/visualizations/{id}", visHandler.Get)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: handler,
		// WriteTimeout also bounds the watch streams; SSE clients are
		// expected to reconnect.
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
