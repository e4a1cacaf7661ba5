package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GalleryCapacity is the fixed number of visualizations the gallery keeps.
// After every completed generation cycle the store holds at most this many
// records; during a cycle it may transiently hold one more.
const GalleryCapacity = 5

// Status represents the lifecycle state of a visualization.
type Status string

const (
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusGenerating, StatusReady, StatusError:
		return true
	}
	return false
}

// Visualization is one gallery entry: a generated component plus the word
// that inspired it. The JSON field names are part of the compatibility
// surface shared with the gallery frontend.
type Visualization struct {
	ID                 uuid.UUID `json:"id"`
	InspirationWord    string    `json:"inspirationWord"`
	Description        string    `json:"description"`
	ComponentCode      string    `json:"componentCode"`
	PhilosophicalTheme string    `json:"philosophicalTheme"`
	GeneratedAt        time.Time `json:"generatedAt"`
	Status             Status    `json:"status"`
}

// IsReady returns true if the visualization completed generation successfully.
func (v *Visualization) IsReady() bool {
	return v.Status == StatusReady
}

// GenerationResult holds the three content fields produced by one generation.
type GenerationResult struct {
	ComponentCode      string
	Description        string
	PhilosophicalTheme string
}

// NormalizeWord trims the user-supplied inspiration word.
// Returns ErrInvalidInput when nothing remains after trimming.
func NormalizeWord(word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("inspiration word is empty: %w", ErrInvalidInput)
	}
	return word, nil
}
