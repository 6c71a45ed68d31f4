// Package query evaluates filter/sort/pagination specifications over the
// canonical catalog collection and computes the facet values the filter
// UI offers.
package query

import "github.com/consoletracker/console-catalog/internal/catalog"

// SortMode selects the result ordering.
type SortMode int

const (
	// SortOriginal orders by ingestion position. Default.
	SortOriginal SortMode = iota
	SortPriceAscending
	SortPriceDescending
)

// Spec is one query: every field is independently optional, the zero
// value of a field means unconstrained. Inclusion sets with no elements
// do not filter; a nil bound does not bound.
type Spec struct {
	// Text is matched case-insensitively as a substring across listing
	// name, model, console type, brand and color.
	Text string

	PriceMin *float64
	PriceMax *float64

	// Storage bounds are in GB. Records without a derived capacity never
	// satisfy a storage bound.
	StorageMin *float64
	StorageMax *float64

	Models []string
	Types  []string
	Brands []string
	Sites  []string

	// IncludesControllers matches the raw "Sim"/"Não" text exactly.
	IncludesControllers *string
	// IncludesGames filters only when true; false reads as unspecified
	// because the UI checkbox cannot express "explicitly without games".
	IncludesGames *bool

	Sort SortMode

	// Page is 1-indexed; Limit is the page size. Both must be positive,
	// the boundary adapter clamps before building a Spec.
	Page  int
	Limit int
}

// Result is one evaluated page plus the collection-wide facet values.
type Result struct {
	Records    []catalog.Record `json:"records"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Facets     Facets           `json:"facets"`
}

// Facets holds the distinct values per categorical dimension and the
// observed bounds of the numeric dimensions, always computed over the
// full collection so options never disappear while filtering.
type Facets struct {
	Models []string `json:"models"`
	Types  []string `json:"types"`
	Brands []string `json:"brands"`
	Sites  []string `json:"sites"`

	PriceMin   float64 `json:"priceMin"`
	PriceMax   float64 `json:"priceMax"`
	StorageMin float64 `json:"storageMin"`
	StorageMax float64 `json:"storageMax"`
}
