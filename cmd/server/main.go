// Command server runs the gallery HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/griederer/ai-visualization-gallery/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
