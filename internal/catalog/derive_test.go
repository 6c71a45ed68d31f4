package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consoletracker/console-catalog/internal/catalog"
)

func TestNormalizeDerivesMissingAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		expected catalog.RawRecord
	}{
		{
			name:  "ps5 slim with disc and controller",
			title: "Console Playstation 5 Slim Branco com leitor de disco + Controle DualSense",
			expected: catalog.RawRecord{
				Modelo:          "PS5 Slim",
				ConsoleType:     "PS5",
				Marca:           "Sony",
				Tipo:            "Console PlayStation",
				Cor:             "Branco",
				ComLeitorDisco:  "Sim",
				IncluiControles: "Sim",
			},
		},
		{
			name:  "ps5 digital edition",
			title: "PS5 Edição Digital 825GB",
			expected: catalog.RawRecord{
				Modelo:          "PS5 Digital Edition",
				ConsoleType:     "PS5",
				Marca:           "Sony",
				Tipo:            "Console PlayStation",
				ComLeitorDisco:  "Não",
				IncluiControles: "Não",
			},
		},
		{
			name:  "ps5 pro",
			title: "Playstation 5 Pro 2TB",
			expected: catalog.RawRecord{
				Modelo:          "PS5 Pro",
				ConsoleType:     "PS5",
				Marca:           "Sony",
				Tipo:            "Console PlayStation",
				IncluiControles: "Não",
			},
		},
		{
			name:  "xbox series x",
			title: "Console Xbox Series X 1TB Preto",
			expected: catalog.RawRecord{
				Modelo:          "Xbox Series X",
				ConsoleType:     "Xbox Series X",
				Marca:           "Microsoft",
				Tipo:            "Console Xbox",
				Cor:             "Preto",
				IncluiControles: "Não",
			},
		},
		{
			name:  "nintendo switch 2",
			title: "Nintendo Switch 2 com Joy-Con",
			expected: catalog.RawRecord{
				Modelo:          "Nintendo Switch 2",
				ConsoleType:     "Nintendo Switch 2",
				Marca:           "Nintendo",
				Tipo:            "Console Nintendo Switch",
				IncluiControles: "Não",
			},
		},
		{
			name:  "bundled game recognized",
			title: "PS5 Standard + God of War Ragnarok com controle",
			expected: catalog.RawRecord{
				Modelo:          "PS5 Standard",
				ConsoleType:     "PS5",
				Marca:           "Sony",
				Tipo:            "Console PlayStation",
				IncluiControles: "Sim",
				JogosIncluidos:  "God Of War",
			},
		},
		{
			name:     "unknown console stays empty",
			title:    "Cadeira gamer ergonômica",
			expected: catalog.RawRecord{IncluiControles: "Não"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := catalog.Normalize(catalog.RawRecord{NomeAnuncio: tt.title}, 0)

			assert.Equal(t, tt.expected.Modelo, rec.Modelo)
			assert.Equal(t, tt.expected.ConsoleType, rec.ConsoleType)
			assert.Equal(t, tt.expected.Marca, rec.Marca)
			assert.Equal(t, tt.expected.Tipo, rec.Tipo)
			assert.Equal(t, tt.expected.Cor, rec.Cor)
			assert.Equal(t, tt.expected.ComLeitorDisco, rec.ComLeitorDisco)
			assert.Equal(t, tt.expected.IncluiControles, rec.IncluiControles)
			assert.Equal(t, tt.expected.JogosIncluidos, rec.JogosIncluidos)
		})
	}
}

func TestNormalizeKeepsScraperClassification(t *testing.T) {
	t.Parallel()

	raw := catalog.RawRecord{
		NomeAnuncio: "Console Playstation 5 Slim",
		Modelo:      "PS5 Digital Edition",
		Cor:         "Prata",
	}

	rec := catalog.Normalize(raw, 0)

	assert.Equal(t, "PS5 Digital Edition", rec.Modelo, "populated fields are never overwritten")
	assert.Equal(t, "Prata", rec.Cor)
	assert.Equal(t, "PS5", rec.ConsoleType, "only missing fields are derived")
}

func TestNormalizeEmptyTitleDerivesNothing(t *testing.T) {
	t.Parallel()

	rec := catalog.Normalize(catalog.RawRecord{PrecoVista: "100"}, 0)

	assert.Empty(t, rec.Modelo)
	assert.Empty(t, rec.Marca)
	assert.Empty(t, rec.IncluiControles)
}
