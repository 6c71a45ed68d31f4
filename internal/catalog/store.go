package catalog

import (
	"sync"

	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
)

// Store is the process-wide cache of the canonical collection. The first
// Records call loads the configured snapshot files; later calls return
// the same slice without touching disk. Reload rebuilds the whole
// collection and swaps it in atomically, a partial rebuild would mix
// OriginalIndex assignments from different generations.
type Store struct {
	paths []string

	once    sync.Once
	mu      sync.RWMutex
	records []Record
	loadErr error
}

// NewStore creates a store over the given snapshot file paths. Nothing is
// read until the first Records call.
func NewStore(paths []string) *Store {
	return &Store{paths: paths}
}

// Records returns the cached canonical collection, loading it on first
// use. Concurrent first calls block on a single load. A failed first load
// is cached too: the snapshots are static, retrying cannot succeed until
// Reload is called after the files change.
func (s *Store) Records() ([]Record, error) {
	s.once.Do(func() {
		records, err := LoadFiles(s.paths...)

		s.mu.Lock()
		s.records, s.loadErr = records, err
		s.mu.Unlock()

		if err != nil {
			applog.WithComponent("catalog").WithError(err).Error("catalog load failed")
			return
		}
		applog.WithComponentAndFields("catalog", applog.Fields{
			"sources": len(s.paths),
			"records": len(records),
		}).Info("catalog loaded")
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.loadErr
}

// Reload rebuilds the collection from the snapshot files and replaces the
// cached one in a single swap. Readers see either the old generation or
// the new one, never a mix. On failure the previous collection stays in
// place.
func (s *Store) Reload() error {
	records, err := LoadFiles(s.paths...)
	if err != nil {
		applog.WithComponent("catalog").WithError(err).Error("catalog reload failed, keeping current collection")
		return err
	}

	// Mark the lazy load as done so a Reload before any read wins.
	s.once.Do(func() {})

	s.mu.Lock()
	s.records, s.loadErr = records, nil
	s.mu.Unlock()

	applog.WithComponentAndFields("catalog", applog.Fields{
		"sources": len(s.paths),
		"records": len(records),
	}).Info("catalog reloaded")
	return nil
}
