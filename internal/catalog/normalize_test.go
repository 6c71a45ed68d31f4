package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoletracker/console-catalog/internal/catalog"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"dot decimal with 2-digit fraction", "3999.00", 3999.00},
		{"dot as thousands separator", "4.499", 4499},
		{"comma decimal", "449,90", 449.90},
		{"comma decimal with dot thousands", "4.499,90", 4499.90},
		{"plain integer", "3500", 3500},
		{"multiple dots are thousands", "1.234.567", 1234567},
		{"single dot one-digit fraction", "4499.5", 44995},
		{"internal whitespace stripped", "4 499,90", 4499.90},
		{"garbage", "consulte", 0},
		{"currency prefix not part of the grammar", "R$ 449,90", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, catalog.ParsePrice(tt.text), 0.001)
		})
	}
}

func TestParsePriceNeverNegative(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"-100", "-449,90", "-1.234"} {
		assert.GreaterOrEqual(t, catalog.ParsePrice(text), 0.0, "input %q", text)
	}
}

func TestParseStorageGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{"plain GB", "825 GB", 825, true},
		{"TB with space", "1 TB", 1024, true},
		{"TB without space", "1TB", 1024, true},
		{"lowercase unit", "825gb", 825, true},
		{"comma decimal TB", "1,5 TB", 1536, true},
		{"TB wins over GB scan", "Console 1 TB armazenamento", 1024, true},
		{"embedded in title", "PS5 Slim 825 GB com controle", 825, true},
		{"no unit token", "825", 0, false},
		{"empty", "", 0, false},
		{"unrelated text", "sem armazenamento", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := catalog.ParseStorageGB(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestIncludesGames(t *testing.T) {
	t.Parallel()

	assert.False(t, catalog.IncludesGames(""))
	assert.False(t, catalog.IncludesGames("  "))
	assert.True(t, catalog.IncludesGames("GTA V"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := catalog.RawRecord{
		NomeAnuncio:         "Console PlayStation 5 Slim Branco",
		PrecoVista:          "3.799,90",
		EspacoArmazenamento: "1 TB",
		JogosIncluidos:      "Astros Playroom",
		Modelo:              "PS5 Slim",
		ConsoleType:         "PS5",
		Marca:               "Sony",
		SiteOrigem:          "Magazine Luiza",
	}

	rec := catalog.Normalize(raw, 7)

	assert.InDelta(t, 3799.90, rec.PriceCash, 0.001)
	require.True(t, rec.HasStorage())
	assert.InDelta(t, 1024, *rec.StorageGB, 0.001)
	assert.True(t, rec.IncludesGames)
	assert.Equal(t, 7, rec.OriginalIndex)
	assert.Equal(t, "Magazine Luiza", rec.SiteOrigem)
}

func TestNormalizeAbsentStorage(t *testing.T) {
	t.Parallel()

	rec := catalog.Normalize(catalog.RawRecord{NomeAnuncio: "Console sem detalhes"}, 0)

	assert.False(t, rec.HasStorage())
	assert.Nil(t, rec.StorageGB)
	assert.Zero(t, rec.StorageOrZero())
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	raw := catalog.RawRecord{
		NomeAnuncio:         "Console PS5 Digital Edition 825 GB",
		PrecoVista:          "4.499",
		EspacoArmazenamento: "825 GB",
	}

	first := catalog.Normalize(raw, 3)
	second := catalog.Normalize(first.RawRecord, 3)

	assert.Equal(t, first, second)
}

func TestLoadAssignsOriginalIndexAcrossSources(t *testing.T) {
	t.Parallel()

	siteA := []catalog.RawRecord{
		{NomeAnuncio: "PS5 A", LinkPagina: "https://a/1"},
		{NomeAnuncio: "PS5 B", LinkPagina: "https://a/2"},
	}
	siteB := []catalog.RawRecord{
		{NomeAnuncio: "PS5 C", LinkPagina: "https://b/1"},
	}

	records := catalog.Load(siteA, siteB)

	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.OriginalIndex)
	}
	assert.Equal(t, "PS5 C", records[2].NomeAnuncio)
}

func TestLoadDeduplicatesByLink(t *testing.T) {
	t.Parallel()

	siteA := []catalog.RawRecord{
		{NomeAnuncio: "first occurrence", LinkPagina: "https://x/1", PrecoVista: "100"},
		{NomeAnuncio: "no link kept", PrecoVista: "200"},
	}
	siteB := []catalog.RawRecord{
		{NomeAnuncio: "duplicate dropped", LinkPagina: "https://x/1", PrecoVista: "300"},
		{NomeAnuncio: "no link also kept"},
	}

	records := catalog.Load(siteA, siteB)

	require.Len(t, records, 3)
	assert.Equal(t, "first occurrence", records[0].NomeAnuncio)
	assert.Equal(t, 2, records[2].OriginalIndex)
}
