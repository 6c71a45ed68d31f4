// Package catalogsvc owns the catalog store: it warms the collection at
// startup and, when configured, rebuilds it on a cron schedule so
// externally refreshed snapshot files become visible without a restart.
package catalogsvc

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/consoletracker/console-catalog/internal/catalog"
	"github.com/consoletracker/console-catalog/internal/config"
	"github.com/consoletracker/console-catalog/internal/pkg/cronx"
	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
)

const component = "catalog.service"

// Service implements contract.Service and contract.CatalogProvider.
type Service struct {
	catalogConfig config.CatalogConfig

	store *catalog.Store

	cron *cron.Cron

	// warmWG tracks the background warm-up load so shutdown can wait
	// for it.
	warmWG sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

// NewService creates the catalog service over the configured snapshot
// sources.
func NewService(catalogConfig config.CatalogConfig) *Service {
	return &Service{
		catalogConfig: catalogConfig,
		store:         catalog.NewStore(catalogConfig.SourcePaths()),
	}
}

// Catalog returns the canonical collection, loading it on first use.
func (s *Service) Catalog() ([]catalog.Record, error) {
	return s.store.Records()
}

// Start warms the catalog in the background and registers the scheduled
// reload when one is configured. A failed warm-up is not fatal here: the
// API surfaces the load error per request until a reload succeeds.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("catalog service is already running (duplicate start)")
		return nil
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"sources": len(s.catalogConfig.Sources),
	}).Info("starting catalog service")

	s.warmWG.Add(1)
	go func() {
		defer s.warmWG.Done()

		if _, err := s.store.Records(); err != nil {
			applog.WithComponent(component).WithError(err).Error("initial catalog load failed")
		}
	}()

	if s.catalogConfig.Reload.Runnable {
		// Recover keeps a panicking reload from taking down the cron
		// engine; SkipIfStillRunning prevents overlapping rebuilds.
		s.cron = cron.New(
			cron.WithParser(cronx.StandardParser()),
			cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.WithChain(
				cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
				cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
			),
		)

		if _, err := s.cron.AddFunc(s.catalogConfig.Reload.TimeSpec, func() {
			// Reload logs its own outcome; a failure keeps the current
			// collection in place.
			_ = s.store.Reload()
		}); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"time_spec": s.catalogConfig.Reload.TimeSpec,
				"error":     err,
			}).Error("failed to register the catalog reload schedule")
			s.cron = nil
		} else {
			s.cron.Start()
			applog.WithComponentAndFields(component, applog.Fields{
				"time_spec": s.catalogConfig.Reload.TimeSpec,
			}).Info("catalog reload schedule registered")
		}
	}

	s.running = true

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	applog.WithComponent(component).Info("catalog service started")

	return nil
}

func (s *Service) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	if s.cron != nil {
		// Wait for an in-flight reload before reporting shutdown.
		<-s.cron.Stop().Done()
		s.cron = nil
	}

	s.warmWG.Wait()

	s.running = false

	applog.WithComponent(component).Info("catalog service stopped")
}
