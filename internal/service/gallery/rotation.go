package gallery

import (
	"context"
	"log/slog"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/metrics"
)

// RotationReport summarizes one rotation pass.
type RotationReport struct {
	// Size is how many records the first listing saw before evicting.
	Size int
	// Deleted is how many records were evicted.
	Deleted int
	// Failed is how many evictions failed and were left for the next pass.
	Failed int
}

// Rotate evicts the oldest records until the gallery holds at most
// domain.GalleryCapacity entries. Records are evicted strictly oldest first
// by generation timestamp, id ascending on ties. Each eviction is
// independent: one failure is logged and counted, the pass continues.
//
// Listing is windowed, so a backlog left by repeated eviction failures can
// exceed one window. Rotate keeps re-listing until the gallery fits, and
// stops early only when a round evicts nothing.
func (s *Service) Rotate(ctx context.Context) RotationReport {
	// Rotation runs after every cycle, so the gallery holds at most
	// capacity+1 records in practice. Twice the capacity gives each listing
	// enough headroom to drain a backlog in few rounds.
	window := domain.GalleryCapacity * 2

	var report RotationReport
	remaining := 0
	for round := 0; ; round++ {
		records, err := s.store.List(ctx, domain.VisualizationFilter{
			SortBy:    domain.SortByGeneratedAt,
			SortOrder: domain.SortOrderASC,
			Limit:     window,
		})
		if err != nil {
			s.log.Error("rotation listing failed", slog.String("error", err.Error()))
			if round == 0 {
				return RotationReport{}
			}
			break
		}
		if round == 0 {
			report.Size = len(records)
		}
		remaining = len(records)

		excess := len(records) - domain.GalleryCapacity
		if excess <= 0 {
			break
		}

		deleted := 0
		for i := 0; i < excess; i++ {
			if err := s.store.Delete(ctx, records[i].ID); err != nil {
				report.Failed++
				s.log.Error("failed to evict visualization",
					slog.String("id", records[i].ID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			report.Deleted++
			deleted++
		}
		remaining -= deleted

		// A short listing saw the whole gallery, and a round with no
		// progress means every eviction failed. Another round cannot help
		// with either.
		if deleted == 0 || len(records) < window {
			break
		}
	}

	metrics.ObserveRotation(remaining, report.Deleted, report.Failed)
	return report
}
