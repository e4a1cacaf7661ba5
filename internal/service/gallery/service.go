// Package gallery implements the gallery business logic: the generation
// cycle, the rotation policy that caps the gallery at its capacity, and
// read access to the stored visualizations.
package gallery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type visualizationStore interface {
	Create(ctx context.Context, inspirationWord string) (*domain.Visualization, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visualization, error)
	Update(ctx context.Context, id uuid.UUID, content domain.GenerationResult, status domain.Status) (*domain.Visualization, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error)
	Subscribe(ctx context.Context, f domain.VisualizationFilter, onData func([]domain.Visualization), onError func(error)) (Subscription, error)
}

type generator interface {
	Generate(ctx context.Context, inspirationWord string) (*domain.GenerationResult, error)
}

// Subscription is a handle on a live gallery view. Unsubscribe stops
// delivery; no callback runs after it returns.
type Subscription interface {
	Unsubscribe()
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the gallery business logic.
type Service struct {
	log       *slog.Logger
	store     visualizationStore
	generator generator

	// generating guards the single-flight policy: at most one generation
	// cycle runs at a time, concurrent requests are rejected.
	generating chan struct{}
}

// NewService creates a new gallery service.
func NewService(logger *slog.Logger, store visualizationStore, gen generator) *Service {
	return &Service{
		log:        logger.With("service", "gallery"),
		store:      store,
		generator:  gen,
		generating: make(chan struct{}, 1),
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns visualizations matching the filter.
func (s *Service) List(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error) {
	return s.store.List(ctx, f)
}

// Get returns a single visualization by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Visualization, error) {
	return s.store.GetByID(ctx, id)
}

// Latest returns the most recently generated ready visualization.
// Returns domain.ErrNotFound when the gallery has none.
func (s *Service) Latest(ctx context.Context) (*domain.Visualization, error) {
	ready := domain.StatusReady
	records, err := s.store.List(ctx, domain.VisualizationFilter{
		Status:    &ready,
		SortBy:    domain.SortByGeneratedAt,
		SortOrder: domain.SortOrderDESC,
		Limit:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("latest visualization: %w", domain.ErrNotFound)
	}
	return &records[0], nil
}

// Watch opens a live view of the gallery. Every change to the stored
// visualizations triggers a fresh ordered snapshot on onData.
func (s *Service) Watch(
	ctx context.Context,
	f domain.VisualizationFilter,
	onData func([]domain.Visualization),
	onError func(error),
) (Subscription, error) {
	return s.store.Subscribe(ctx, f, onData, onError)
}
