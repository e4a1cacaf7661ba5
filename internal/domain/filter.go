package domain

// Sort fields accepted by VisualizationFilter.SortBy.
const (
	SortByGeneratedAt     = "generatedAt"
	SortByInspirationWord = "inspirationWord"

	SortOrderASC  = "asc"
	SortOrderDESC = "desc"
)

// VisualizationFilter contains filtering/sorting/limit parameters for gallery
// listings. The zero value lists the newest gallery page.
type VisualizationFilter struct {
	// Status restricts results to one lifecycle status. nil means all.
	Status *Status

	// SortBy determines the sort field: "generatedAt" or "inspirationWord".
	// Default: "generatedAt".
	SortBy string

	// SortOrder: "asc" or "desc". Default: "desc".
	SortOrder string

	// Limit is the maximum number of records to return.
	// Default: gallery capacity; max: 50.
	Limit int
}
