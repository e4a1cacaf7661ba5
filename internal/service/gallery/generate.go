package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/metrics"
)

// Generate runs one full generation cycle:
//
//  1. insert a placeholder record in "generating" status so watchers see
//     the cycle immediately;
//  2. ask the generator for content inspired by the word;
//  3. on success write the content and flip the record to "ready", then
//     rotate the gallery down to capacity;
//  4. on failure flip the record to "error" and skip rotation, so a failed
//     cycle never evicts an existing piece.
//
// At most one cycle runs at a time; a request arriving while another cycle
// is in flight fails fast with domain.ErrGenerationInFlight.
func (s *Service) Generate(ctx context.Context, inspirationWord string) (*domain.Visualization, error) {
	word, err := domain.NormalizeWord(inspirationWord)
	if err != nil {
		return nil, err
	}

	select {
	case s.generating <- struct{}{}:
	default:
		metrics.ObserveGeneration(metrics.OutcomeRejected, 0)
		return nil, fmt.Errorf("word %q: %w", word, domain.ErrGenerationInFlight)
	}
	defer func() { <-s.generating }()

	start := time.Now()

	placeholder, err := s.store.Create(ctx, word)
	if err != nil {
		metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("create placeholder: %w", err)
	}

	log := s.log.With(
		slog.String("id", placeholder.ID.String()),
		slog.String("word", word),
	)
	log.Info("generation cycle started")

	result, err := s.generator.Generate(ctx, word)
	if err != nil {
		log.Error("generation failed", slog.String("error", err.Error()))
		if markErr := s.store.UpdateStatus(ctx, placeholder.ID, domain.StatusError); markErr != nil {
			log.Error("mark record as failed", slog.String("error", markErr.Error()))
		}
		metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	if _, err := s.store.Update(ctx, placeholder.ID, *result, domain.StatusReady); err != nil {
		if markErr := s.store.UpdateStatus(ctx, placeholder.ID, domain.StatusError); markErr != nil {
			log.Error("mark record as failed", slog.String("error", markErr.Error()))
		}
		metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("store generated content: %w", err)
	}

	// Rotation is best effort: a failed eviction is retried on the next
	// cycle and must not fail the generation that succeeded.
	report := s.Rotate(ctx)
	if report.Failed > 0 {
		log.Warn("rotation left extra records",
			slog.Int("deleted", report.Deleted),
			slog.Int("failed", report.Failed),
		)
	}

	final, err := s.store.GetByID(ctx, placeholder.ID)
	if err != nil {
		metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("reload generated visualization: %w", err)
	}

	log.Info("generation cycle finished",
		slog.Duration("took", time.Since(start)),
		slog.Int("evicted", report.Deleted),
	)
	metrics.ObserveGeneration(metrics.OutcomeSuccess, time.Since(start))
	return final, nil
}
