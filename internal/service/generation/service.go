// Package generation implements the stateless generation endpoint: one
// inspiration word in, three validated content fields out. It owns the LLM
// round trip and output validation but never touches the store; persistence
// belongs to the gallery orchestrator, which keeps this service retryable
// and free of side-effect ordering.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/extract"
)

// minCodeLength guards against the model returning only a comment or a
// truncated snippet: anything shorter cannot be a renderable component.
const minCodeLength = 50

// llmClient defines the completion interface needed by the generation service.
type llmClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service turns an inspiration word into validated visualization content.
type Service struct {
	log     *slog.Logger
	llm     llmClient
	timeout time.Duration
}

// NewService creates a generation service. timeout bounds each upstream call.
func NewService(logger *slog.Logger, llm llmClient, timeout time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "generation"),
		llm:     llm,
		timeout: timeout,
	}
}

// Generate runs one full generation: validate input, call the model, extract
// fields from the free-text reply, validate the result.
//
// Failure modes: domain.ErrInvalidInput (empty word), domain.ErrUpstream
// (LLM call failed, message preserved), domain.ErrValidation (extracted code
// too short to be a real component).
func (s *Service) Generate(ctx context.Context, inspirationWord string) (*domain.GenerationResult, error) {
	word, err := domain.NormalizeWord(inspirationWord)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.llm.Complete(ctx, buildPrompt(word))
	if err != nil {
		return nil, fmt.Errorf("generate %q: %w", word, err)
	}

	result := extract.Generation(raw, word)

	if len(result.ComponentCode) < minCodeLength {
		s.log.WarnContext(ctx, "generated code too short",
			slog.String("word", word),
			slog.Int("code_length", len(result.ComponentCode)),
			slog.Int("response_length", len(raw)),
		)
		return nil, fmt.Errorf(
			"generated code appears to be incomplete (%d characters): %w",
			len(result.ComponentCode), domain.NewValidationError("componentCode", "too short"),
		)
	}

	s.log.InfoContext(ctx, "visualization generated",
		slog.String("word", word),
		slog.Int("code_length", len(result.ComponentCode)),
		slog.Duration("duration", time.Since(start)),
	)

	return &domain.GenerationResult{
		ComponentCode:      result.ComponentCode,
		Description:        result.Description,
		PhilosophicalTheme: result.PhilosophicalTheme,
	}, nil
}
