package visualization

import (
	"sort"
	"strings"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

const (
	defaultLimit = domain.GalleryCapacity
	maxLimit     = 50

	// overFetchFactor bounds the unfiltered bulk read the in-memory path
	// works from. Twice the requested page is enough headroom to filter out
	// non-matching statuses in a gallery that never exceeds capacity+1 rows.
	overFetchFactor = 2
)

// normalize applies defaults and clamps values.
func normalize(f domain.VisualizationFilter) domain.VisualizationFilter {
	switch f.SortBy {
	case domain.SortByGeneratedAt, domain.SortByInspirationWord:
	default:
		f.SortBy = domain.SortByGeneratedAt
	}

	switch strings.ToLower(f.SortOrder) {
	case domain.SortOrderASC, domain.SortOrderDESC:
		f.SortOrder = strings.ToLower(f.SortOrder)
	default:
		f.SortOrder = domain.SortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	return f
}

// ApplyFilter filters, sorts, and truncates records in memory. This is the
// contract of record for listing: the SQL-side variant is only an
// optimization and must produce the same result.
func ApplyFilter(f domain.VisualizationFilter, records []domain.Visualization) []domain.Visualization {
	f = normalize(f)

	out := make([]domain.Visualization, 0, len(records))
	for _, r := range records {
		if f.Status != nil && r.Status != *f.Status {
			continue
		}
		out = append(out, r)
	}

	asc := f.SortOrder == domain.SortOrderASC
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		var less, eq bool
		switch f.SortBy {
		case domain.SortByInspirationWord:
			less = a.InspirationWord < b.InspirationWord
			eq = a.InspirationWord == b.InspirationWord
		default:
			less = a.GeneratedAt.Before(b.GeneratedAt)
			eq = a.GeneratedAt.Equal(b.GeneratedAt)
		}

		// Deterministic tiebreak: record id ascending, regardless of direction.
		if eq {
			return a.ID.String() < b.ID.String()
		}
		if asc {
			return less
		}
		return !less
	})

	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
