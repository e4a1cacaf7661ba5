// Command cleanup removes visualization records stuck in "generating" longer
// than the configured staleness window (cycles interrupted by a crash or
// deploy) and then rotates the gallery back down to capacity. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres"
	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres/visualization"
	"github.com/griederer/ai-visualization-gallery/internal/app"
	"github.com/griederer/ai-visualization-gallery/internal/config"
	"github.com/griederer/ai-visualization-gallery/internal/service/gallery"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := visualization.New(pool)
	cutoff := time.Now().Add(-cfg.Gallery.StaleAfter)

	removed, err := repo.DeleteStaleGenerating(ctx, cutoff)
	if err != nil {
		logger.Error("delete stale records failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	svc := gallery.NewService(logger, app.GalleryStore{Repo: repo}, nil)
	report := svc.Rotate(ctx)
	if report.Failed > 0 {
		logger.Error("rotation left extra records", slog.Int("failed", report.Failed))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("stale_removed", removed),
		slog.Int("rotated_out", report.Deleted),
		slog.Time("cutoff", cutoff),
	)
}
