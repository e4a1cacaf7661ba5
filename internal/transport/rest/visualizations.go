package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/service/gallery"
)

// galleryService defines the minimal interface needed by VisualizationHandler.
type galleryService interface {
	Generate(ctx context.Context, inspirationWord string) (*domain.Visualization, error)
	List(ctx context.Context, f domain.VisualizationFilter) ([]domain.Visualization, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Visualization, error)
	Latest(ctx context.Context) (*domain.Visualization, error)
	Watch(ctx context.Context, f domain.VisualizationFilter, onData func([]domain.Visualization), onError func(error)) (gallery.Subscription, error)
}

// VisualizationHandler serves the gallery REST endpoints.
type VisualizationHandler struct {
	svc galleryService
	log *slog.Logger
}

// NewVisualizationHandler creates a VisualizationHandler.
func NewVisualizationHandler(svc galleryService, logger *slog.Logger) *VisualizationHandler {
	return &VisualizationHandler{svc: svc, log: logger.With("handler", "visualizations")}
}

type createRequest struct {
	InspirationWord string `json:"inspirationWord"`
}

type listResponse struct {
	Visualizations []domain.Visualization `json:"visualizations"`
	Count          int                    `json:"count"`
}

// Create handles POST /api/v1/visualizations: it runs a full generation
// cycle and returns the stored record.
func (h *VisualizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.svc.Generate(r.Context(), req.InspirationWord)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

// List handles GET /api/v1/visualizations.
func (h *VisualizationHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Visualizations: records,
		Count:          len(records),
	})
}

// Get handles GET /api/v1/visualizations/{id}.
func (h *VisualizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid visualization id")
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Latest handles GET /api/v1/visualizations/latest: the newest ready piece.
func (h *VisualizationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Latest(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func filterFromQuery(r *http.Request) (domain.VisualizationFilter, error) {
	var f domain.VisualizationFilter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status := domain.Status(s)
		if !status.IsValid() {
			return f, fmt.Errorf("unknown status %q", s)
		}
		f.Status = &status
	}

	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			return f, fmt.Errorf("limit must be a positive integer")
		}
		f.Limit = n
	}

	// Unknown sort fields and orders fall back to the defaults downstream.
	f.SortBy = q.Get("sort")
	f.SortOrder = q.Get("order")

	return f, nil
}
