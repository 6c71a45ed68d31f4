package catalog

import (
	"os"

	"github.com/tidwall/gjson"

	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
)

// LoadFiles reads the snapshot files at the given paths, in order, and
// builds the canonical collection. A file that cannot be read or is not a
// JSON array fails the whole load, serving a partial union would silently
// drop a source. A malformed element inside a file is skipped and logged,
// one bad listing never aborts the load.
func LoadFiles(paths ...string) ([]Record, error) {
	logger := applog.WithComponent("catalog")

	sources := make([][]RawRecord, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.Unavailable, "snapshot file %q could not be read", path)
		}

		src, skipped, err := parseSnapshot(data)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "snapshot file %q is not a JSON array", path)
		}
		if skipped > 0 {
			logger.WithFields(applog.Fields{"path": path, "skipped": skipped}).
				Warn("malformed listings skipped while reading snapshot")
		}
		logger.WithFields(applog.Fields{"path": path, "records": len(src)}).
			Debug("snapshot file read")

		sources = append(sources, src)
	}

	return Load(sources...), nil
}

// parseSnapshot decodes one snapshot file. Returns the listings, the
// number of malformed elements skipped, and an error when the document
// itself is unusable.
func parseSnapshot(data []byte) ([]RawRecord, int, error) {
	if !gjson.ValidBytes(data) {
		return nil, 0, apperrors.New(apperrors.ParsingFailed, "invalid JSON document")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, 0, apperrors.New(apperrors.ParsingFailed, "top-level value is not an array")
	}

	var (
		records []RawRecord
		skipped int
	)
	doc.ForEach(func(_, el gjson.Result) bool {
		if !el.IsObject() {
			skipped++
			return true
		}
		records = append(records, rawRecordFromJSON(el))
		return true
	})
	return records, skipped, nil
}

func rawRecordFromJSON(el gjson.Result) RawRecord {
	return RawRecord{
		PrecoVista:          el.Get("preco_vista").String(),
		PrecoParcelado:      el.Get("preco_parcelado").String(),
		Modelo:              el.Get("modelo").String(),
		NomeAnuncio:         el.Get("nome_anuncio").String(),
		LinkPagina:          el.Get("link_pagina").String(),
		ImageURL:            el.Get("image_url").String(),
		Tipo:                el.Get("tipo").String(),
		ConsoleType:         el.Get("console_type").String(),
		Cor:                 el.Get("cor").String(),
		ComLeitorDisco:      el.Get("com_leitor_disco").String(),
		EspacoArmazenamento: el.Get("espaco_armazenamento").String(),
		JogosIncluidos:      el.Get("jogos_incluidos").String(),
		IncluiControles:     el.Get("inclui_controles").String(),
		Marca:               el.Get("marca").String(),
		SiteOrigem:          el.Get("site_origem").String(),
		DataColeta:          el.Get("data_coleta").String(),
		Disponibilidade:     el.Get("disponibilidade").String(),
	}
}
