package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/consoletracker/console-catalog/internal/catalog"
)

// Fallback bounds used when no record carries a usable value, so the
// range sliders never receive an empty interval.
const (
	fallbackPriceMin   = 0
	fallbackPriceMax   = 10000
	fallbackStorageMin = 0
	fallbackStorageMax = 2000
)

// ComputeFacets collects the distinct non-empty categorical values and
// the observed numeric bounds of the collection. Price bounds consider
// only records with a parsed price, storage bounds only records with a
// derived capacity.
func ComputeFacets(records []catalog.Record) Facets {
	models := map[string]struct{}{}
	types := map[string]struct{}{}
	brands := map[string]struct{}{}
	sites := map[string]struct{}{}

	var (
		priceSeen, storageSeen bool
		priceMin, priceMax     float64
		storageMin, storageMax float64
	)

	for _, rec := range records {
		addDistinct(models, rec.Modelo)
		addDistinct(types, rec.ConsoleType)
		addDistinct(brands, rec.Marca)
		addDistinct(sites, rec.SiteOrigem)

		if rec.PriceCash > 0 {
			if !priceSeen || rec.PriceCash < priceMin {
				priceMin = rec.PriceCash
			}
			if !priceSeen || rec.PriceCash > priceMax {
				priceMax = rec.PriceCash
			}
			priceSeen = true
		}
		if rec.HasStorage() {
			gb := *rec.StorageGB
			if !storageSeen || gb < storageMin {
				storageMin = gb
			}
			if !storageSeen || gb > storageMax {
				storageMax = gb
			}
			storageSeen = true
		}
	}

	facets := Facets{
		Models: sortedValues(models),
		Types:  sortedValues(types),
		Brands: sortedValues(brands),
		Sites:  sortedValues(sites),
	}

	if priceSeen {
		facets.PriceMin, facets.PriceMax = priceMin, priceMax
	} else {
		facets.PriceMin, facets.PriceMax = fallbackPriceMin, fallbackPriceMax
	}
	if storageSeen {
		facets.StorageMin, facets.StorageMax = storageMin, storageMax
	} else {
		facets.StorageMin, facets.StorageMax = fallbackStorageMin, fallbackStorageMax
	}
	return facets
}

func addDistinct(set map[string]struct{}, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	set[value] = struct{}{}
}

// sortedValues orders the values with a pt-BR collator so accented
// listing vocabulary ("Edição", "Não") sorts the way the UI expects.
func sortedValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}

	collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.Slice(values, func(i, j int) bool {
		return collator.CompareString(values[i], values[j]) < 0
	})
	return values
}
