package catalogsvc_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/consoletracker/console-catalog/internal/config"
	"github.com/consoletracker/console-catalog/internal/service/catalogsvc"
)

func sourceConfig(t *testing.T, content string) config.CatalogConfig {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return config.CatalogConfig{
		Sources: []config.SourceConfig{
			{ID: "test", Name: "Test", File: path},
		},
		DefaultPageSize: config.DefaultPageSize,
		MaxPageSize:     config.DefaultMaxPageSize,
	}
}

func TestServiceProvidesCatalog(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := catalogsvc.NewService(sourceConfig(t, `[
		{"nome_anuncio": "PS5 Slim", "preco_vista": "3.799,90", "link_pagina": "https://x/1"}
	]`))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	records, err := svc.Catalog()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 3799.90, records[0].PriceCash, 0.001)

	cancel()
	wg.Wait()
}

func TestServiceStartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := catalogsvc.NewService(sourceConfig(t, `[]`))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))
	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg), "duplicate start is a no-op")

	cancel()
	wg.Wait()
}

func TestServiceSurfacesLoadFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := config.CatalogConfig{
		Sources: []config.SourceConfig{
			{ID: "missing", Name: "Missing", File: filepath.Join(t.TempDir(), "missing.json")},
		},
	}
	svc := catalogsvc.NewService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	_, err := svc.Catalog()
	assert.Error(t, err)

	cancel()
	wg.Wait()
}

func TestServiceScheduledReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := sourceConfig(t, `[{"nome_anuncio": "old", "link_pagina": "https://x/1"}]`)
	cfg.Reload = config.ReloadConfig{Runnable: true, TimeSpec: "* * * * * *"}

	svc := catalogsvc.NewService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	records, err := svc.Catalog()
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, os.WriteFile(cfg.Sources[0].File, []byte(`[
		{"nome_anuncio": "new A", "link_pagina": "https://x/1"},
		{"nome_anuncio": "new B", "link_pagina": "https://x/2"}
	]`), 0o644))

	// The every-second schedule should pick up the rewritten file.
	deadline := time.Now().Add(5 * time.Second)
	for {
		records, err = svc.Catalog()
		require.NoError(t, err)
		if len(records) == 2 || time.Now().After(deadline) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	assert.Len(t, records, 2)

	cancel()
	wg.Wait()
}
