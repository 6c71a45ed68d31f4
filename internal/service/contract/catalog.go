package contract

import "github.com/consoletracker/console-catalog/internal/catalog"

// CatalogProvider hands out the canonical listing collection. The
// returned slice is a shared immutable snapshot: callers must not
// modify it.
type CatalogProvider interface {
	// Catalog returns the current collection, loading it on first use.
	// The error is the source-load failure, the only failure class this
	// application propagates.
	Catalog() ([]catalog.Record, error)
}
