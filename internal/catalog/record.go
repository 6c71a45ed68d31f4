// Package catalog loads scraped console listings from snapshot files and
// normalizes them into the canonical in-memory collection served by the
// query engine.
package catalog

// RawRecord is one scraped listing exactly as written by the acquisition
// pipeline. All fields are free-form text; the JSON keys follow the
// snapshot files (Portuguese, one array per source site).
type RawRecord struct {
	PrecoVista          string `json:"preco_vista"`
	PrecoParcelado      string `json:"preco_parcelado"`
	Modelo              string `json:"modelo"`
	NomeAnuncio         string `json:"nome_anuncio"`
	LinkPagina          string `json:"link_pagina"`
	ImageURL            string `json:"image_url"`
	Tipo                string `json:"tipo"`
	ConsoleType         string `json:"console_type"`
	Cor                 string `json:"cor"`
	ComLeitorDisco      string `json:"com_leitor_disco"`
	EspacoArmazenamento string `json:"espaco_armazenamento"`
	JogosIncluidos      string `json:"jogos_incluidos"`
	IncluiControles     string `json:"inclui_controles"`
	Marca               string `json:"marca"`
	SiteOrigem          string `json:"site_origem"`
	DataColeta          string `json:"data_coleta"`
	Disponibilidade     string `json:"disponibilidade"`
}

// Record is the canonical view of a RawRecord: the raw fields carried
// through plus the derived typed values. StorageGB is nil when the raw
// storage text holds no recognizable capacity token; zero would wrongly
// read as "no storage" instead of "unknown".
type Record struct {
	RawRecord

	PriceCash     float64  `json:"priceCash"`
	StorageGB     *float64 `json:"storageGB,omitempty"`
	IncludesGames bool     `json:"includesGames"`
	OriginalIndex int      `json:"originalIndex"`
}

// HasStorage reports whether a canonical storage capacity was derived.
func (r *Record) HasStorage() bool {
	return r.StorageGB != nil
}

// StorageOrZero returns the canonical capacity, or 0 when absent. Callers
// filtering on storage must use HasStorage first; absent never satisfies
// a bound.
func (r *Record) StorageOrZero() float64 {
	if r.StorageGB == nil {
		return 0
	}
	return *r.StorageGB
}
