package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

// generationService defines the minimal interface needed by GenerateHandler.
type generationService interface {
	Generate(ctx context.Context, inspirationWord string) (*domain.GenerationResult, error)
}

// GenerateHandler serves the stateless generation endpoint: content in,
// content out, nothing stored. Useful for previewing a word before
// committing it to the gallery.
type GenerateHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateRequest struct {
	InspirationWord string `json:"inspirationWord"`
}

type generateResponse struct {
	Success bool         `json:"success"`
	Data    generateData `json:"data"`
}

type generateData struct {
	ComponentCode      string `json:"componentCode"`
	Description        string `json:"description"`
	PhilosophicalTheme string `json:"philosophicalTheme"`
}

// Generate handles POST /api/v1/generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), req.InspirationWord)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success: true,
		Data: generateData{
			ComponentCode:      result.ComponentCode,
			Description:        result.Description,
			PhilosophicalTheme: result.PhilosophicalTheme,
		},
	})
}
