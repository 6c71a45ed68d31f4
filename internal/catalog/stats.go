package catalog

// UnspecifiedModel labels records whose model could not be derived in
// the per-model distribution.
const UnspecifiedModel = "Não especificado"

// Stats summarizes a collection for reporting: field coverage counters
// and the value distributions of the categorical dimensions.
type Stats struct {
	Total int

	WithPrice         int
	WithImage         int
	WithDiskReader    int
	WithoutDiskReader int
	WithControllers   int
	WithGames         int

	PerSite        map[string]int
	PerModel       map[string]int
	PerConsoleType map[string]int
	PerBrand       map[string]int
	Colors         map[string]int
	Storage        map[string]int

	// Price bounds over records with a parsed cash price.
	PriceMin float64
	PriceMax float64
}

// ComputeStats walks the collection once and counts everything the
// stats report shows.
func ComputeStats(records []Record) Stats {
	stats := Stats{
		Total: len(records),

		PerSite:        make(map[string]int),
		PerModel:       make(map[string]int),
		PerConsoleType: make(map[string]int),
		PerBrand:       make(map[string]int),
		Colors:         make(map[string]int),
		Storage:        make(map[string]int),
	}

	priceSeen := false

	for i := range records {
		rec := &records[i]

		stats.PerSite[rec.SiteOrigem]++

		model := rec.Modelo
		if model == "" {
			model = UnspecifiedModel
		}
		stats.PerModel[model]++

		if rec.ConsoleType != "" {
			stats.PerConsoleType[rec.ConsoleType]++
		}
		if rec.Marca != "" {
			stats.PerBrand[rec.Marca]++
		}
		if rec.Cor != "" {
			stats.Colors[rec.Cor]++
		}
		if rec.EspacoArmazenamento != "" {
			stats.Storage[rec.EspacoArmazenamento]++
		}

		if rec.PriceCash > 0 {
			stats.WithPrice++
			if !priceSeen || rec.PriceCash < stats.PriceMin {
				stats.PriceMin = rec.PriceCash
			}
			if !priceSeen || rec.PriceCash > stats.PriceMax {
				stats.PriceMax = rec.PriceCash
			}
			priceSeen = true
		}
		if rec.ImageURL != "" {
			stats.WithImage++
		}

		switch rec.ComLeitorDisco {
		case "Sim":
			stats.WithDiskReader++
		case "Não":
			stats.WithoutDiskReader++
		}

		if rec.IncluiControles == "Sim" {
			stats.WithControllers++
		}
		if rec.IncludesGames {
			stats.WithGames++
		}
	}

	return stats
}
