package query

import (
	"sort"
	"strings"

	"github.com/consoletracker/console-catalog/internal/catalog"
)

// Evaluate runs one query over the collection: text filter, range
// filters, categorical inclusion, boolean filters, stable sort,
// pagination. The stages are independent predicates, their order only
// matters for how fast the working set shrinks. Facets are computed over
// the full collection, not the filtered subset.
func Evaluate(records []catalog.Record, spec Spec) Result {
	matched := filter(records, spec)
	sortRecords(matched, spec.Sort)

	total := len(matched)
	page, limit := spec.Page, spec.Limit
	totalPages := (total + limit - 1) / limit

	lo := (page - 1) * limit
	hi := lo + limit
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return Result{
		Records:    matched[lo:hi],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Facets:     ComputeFacets(records),
	}
}

func filter(records []catalog.Record, spec Spec) []catalog.Record {
	term := strings.ToLower(strings.TrimSpace(spec.Text))

	models := toSet(spec.Models)
	types := toSet(spec.Types)
	brands := toSet(spec.Brands)
	sites := toSet(spec.Sites)

	matched := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if term != "" && !matchesText(&rec, term) {
			continue
		}
		if spec.PriceMin != nil && rec.PriceCash < *spec.PriceMin {
			continue
		}
		if spec.PriceMax != nil && rec.PriceCash > *spec.PriceMax {
			continue
		}
		if spec.StorageMin != nil && (!rec.HasStorage() || *rec.StorageGB < *spec.StorageMin) {
			continue
		}
		if spec.StorageMax != nil && (!rec.HasStorage() || *rec.StorageGB > *spec.StorageMax) {
			continue
		}
		if !inSet(models, rec.Modelo) || !inSet(types, rec.ConsoleType) ||
			!inSet(brands, rec.Marca) || !inSet(sites, rec.SiteOrigem) {
			continue
		}
		if spec.IncludesControllers != nil && rec.IncluiControles != *spec.IncludesControllers {
			continue
		}
		if spec.IncludesGames != nil && *spec.IncludesGames && !rec.IncludesGames {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// matchesText checks the lower-cased concatenation of the searchable
// fields for the term, skipping empty fields.
func matchesText(rec *catalog.Record, term string) bool {
	for _, field := range []string{rec.NomeAnuncio, rec.Modelo, rec.ConsoleType, rec.Marca, rec.Cor} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortRecords orders in place. The sort is stable, so price ties keep
// their relative original order in both directions.
func sortRecords(records []catalog.Record, mode SortMode) {
	switch mode {
	case SortPriceAscending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].PriceCash < records[j].PriceCash
		})
	case SortPriceDescending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].PriceCash > records[j].PriceCash
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].OriginalIndex < records[j].OriginalIndex
		})
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// inSet treats a nil set as "no filter", never as "exclude all".
func inSet(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}
