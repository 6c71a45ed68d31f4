// Package request defines the inbound parameter models of the v1 API.
package request

import (
	"math"
	"strconv"
	"strings"

	"github.com/consoletracker/console-catalog/internal/pkg/strutil"
	"github.com/consoletracker/console-catalog/internal/query"
)

// Sort parameter values accepted by the product listing endpoint.
const (
	SortOriginal        = "original"
	SortPriceAscending  = "price-ascending"
	SortPriceDescending = "price-descending"
)

// ProductQuery captures the raw query string of the product listing
// endpoint. Every field is optional; values that do not parse are
// treated as absent, never as errors, so a sloppy client still gets a
// sensible page.
type ProductQuery struct {
	Query string `query:"query"`

	PriceMin string `query:"priceMin"`
	PriceMax string `query:"priceMax"`

	StorageMin string `query:"storageMin"`
	StorageMax string `query:"storageMax"`

	// Comma-separated inclusion lists.
	Model      string `query:"model"`
	Type       string `query:"type"`
	Brand      string `query:"brand"`
	SiteOrigin string `query:"siteOrigin"`

	IncludesControllers string `query:"includesControllers"`
	IncludesGames       string `query:"includesGames"`

	SortBy string `query:"sortBy"`

	Page  string `query:"page"`
	Limit string `query:"limit"`
}

// Spec translates the raw parameters into a query specification.
// Page below 1 clamps to 1; the limit defaults to defaultPageSize and
// is capped at maxPageSize; an unknown sortBy falls back to the
// original order.
func (q *ProductQuery) Spec(defaultPageSize, maxPageSize int) query.Spec {
	spec := query.Spec{
		Text: strings.TrimSpace(q.Query),

		PriceMin:   parseBound(q.PriceMin),
		PriceMax:   parseBound(q.PriceMax),
		StorageMin: parseBound(q.StorageMin),
		StorageMax: parseBound(q.StorageMax),

		Models: strutil.SplitAndTrim(q.Model, ","),
		Types:  strutil.SplitAndTrim(q.Type, ","),
		Brands: strutil.SplitAndTrim(q.Brand, ","),
		Sites:  strutil.SplitAndTrim(q.SiteOrigin, ","),

		Sort: parseSort(q.SortBy),
	}

	if v := strings.TrimSpace(q.IncludesControllers); v != "" {
		spec.IncludesControllers = &v
	}

	// Only an explicit true filters; anything else reads as unspecified.
	if v, err := strconv.ParseBool(strings.TrimSpace(q.IncludesGames)); err == nil && v {
		spec.IncludesGames = &v
	}

	spec.Page = parsePositive(q.Page, 1)
	spec.Limit = parsePositive(q.Limit, defaultPageSize)
	if spec.Limit > maxPageSize {
		spec.Limit = maxPageSize
	}

	return spec
}

// parseBound reads a numeric range bound. Malformed or non-finite
// values leave the bound unconstrained.
func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// parsePositive reads a positive integer, falling back to def for
// anything absent, malformed or below 1.
func parsePositive(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func parseSort(s string) query.SortMode {
	switch strings.TrimSpace(s) {
	case SortPriceAscending:
		return query.SortPriceAscending
	case SortPriceDescending:
		return query.SortPriceDescending
	default:
		return query.SortOriginal
	}
}
