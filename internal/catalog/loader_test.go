package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoletracker/console-catalog/internal/catalog"
	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
)

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	magalu := writeSnapshot(t, "magazineluiza_products.json", `[
		{
			"nome_anuncio": "Console PS5 Slim 1TB",
			"preco_vista": "3.799,90",
			"link_pagina": "https://magalu/ps5-slim",
			"site_origem": "Magazine Luiza",
			"espaco_armazenamento": "1 TB"
		},
		{
			"nome_anuncio": "Console Xbox Series S",
			"preco_vista": "2499.00",
			"link_pagina": "https://magalu/xbox-s",
			"site_origem": "Magazine Luiza"
		}
	]`)
	ml := writeSnapshot(t, "mercadolivre_products.json", `[
		{
			"nome_anuncio": "PS5 Digital Edition 825 GB",
			"preco_vista": "4.499",
			"link_pagina": "https://ml/ps5-digital",
			"site_origem": "MercadoLivre"
		}
	]`)

	records, err := catalog.LoadFiles(magalu, ml)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.InDelta(t, 3799.90, records[0].PriceCash, 0.001)
	assert.InDelta(t, 2499.00, records[1].PriceCash, 0.001)
	assert.InDelta(t, 4499, records[2].PriceCash, 0.001)
	assert.Equal(t, []int{0, 1, 2}, []int{
		records[0].OriginalIndex, records[1].OriginalIndex, records[2].OriginalIndex,
	})
	require.True(t, records[0].HasStorage())
	assert.InDelta(t, 1024, *records[0].StorageGB, 0.001)
}

func TestLoadFilesMissingFileFailsWholeLoad(t *testing.T) {
	t.Parallel()

	existing := writeSnapshot(t, "ok.json", `[]`)

	records, err := catalog.LoadFiles(existing, filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.Nil(t, records)
}

func TestLoadFilesRejectsNonArrayDocument(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "bad.json", `{"nome_anuncio": "not a list"}`)

	_, err := catalog.LoadFiles(path)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
}

func TestLoadFilesRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "truncated.json", `[{"nome_anuncio": "cut off"`)

	_, err := catalog.LoadFiles(path)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
}

func TestLoadFilesSkipsMalformedElements(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "mixed.json", `[
		{"nome_anuncio": "ok", "link_pagina": "https://x/1"},
		"just a string",
		42,
		{"nome_anuncio": "also ok", "link_pagina": "https://x/2"}
	]`)

	records, err := catalog.LoadFiles(path)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ok", records[0].NomeAnuncio)
	assert.Equal(t, "also ok", records[1].NomeAnuncio)
}

func TestLoadFilesEmptySources(t *testing.T) {
	t.Parallel()

	records, err := catalog.LoadFiles()

	require.NoError(t, err)
	assert.Empty(t, records)
}
