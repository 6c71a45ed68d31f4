package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyword vocabularies the acquisition pipeline uses when classifying a
// listing from its title. Normalization applies the same vocabulary to
// fill categorical fields the scraper left empty, so hand-edited or
// partial snapshots still classify consistently.

var productColors = []string{
	"branco", "preto", "azul", "vermelho", "dourado", "prata", "cinza",
	"white", "black", "blue", "red",
}

var controllerKeywords = []string{
	"controle", "dualsense", "joystick", "gamepad", "controller",
}

var bundledGameTitles = []string{
	"spider-man", "ratchet", "clank", "horizon", "forbidden west",
	"demon's souls", "returnal", "sackboy", "astros playroom",
	"god of war", "the last of us", "uncharted",
}

var withDiskKeywords = []string{
	"com leitor", "leitor de disco", "disc version", "versão com leitor",
	"com disco",
}

var withoutDiskKeywords = []string{
	"sem leitor", "digital", "digital edition", "slim", "edição digital",
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isPlayStation(title string) bool {
	return strings.Contains(title, "ps5") ||
		strings.Contains(title, "playstation 5") ||
		strings.Contains(title, "playstation5")
}

// deriveModel classifies the console model from the listing title.
// Empty when the title names no known console.
func deriveModel(title string) string {
	t := strings.ToLower(title)
	switch {
	case isPlayStation(t):
		switch {
		case strings.Contains(t, "slim"):
			return "PS5 Slim"
		case strings.Contains(t, "digital") || strings.Contains(t, "edição digital"):
			return "PS5 Digital Edition"
		case strings.Contains(t, "pro"):
			return "PS5 Pro"
		default:
			return "PS5 Standard"
		}
	case strings.Contains(t, "xbox series x") || strings.Contains(t, "xbox-series-x"):
		return "Xbox Series X"
	case strings.Contains(t, "xbox series s") || strings.Contains(t, "xbox-series-s"):
		return "Xbox Series S"
	case strings.Contains(t, "switch 2") || strings.Contains(t, "nintendo switch 2"):
		return "Nintendo Switch 2"
	case strings.Contains(t, "switch") || strings.Contains(t, "nintendo switch"):
		return "Nintendo Switch"
	}
	return ""
}

func deriveConsoleType(title string) string {
	t := strings.ToLower(title)
	switch {
	case isPlayStation(t):
		return "PS5"
	case strings.Contains(t, "xbox series x") || strings.Contains(t, "xbox-series-x"):
		return "Xbox Series X"
	case strings.Contains(t, "xbox series s") || strings.Contains(t, "xbox-series-s"):
		return "Xbox Series S"
	case strings.Contains(t, "switch 2") || strings.Contains(t, "nintendo switch 2"):
		return "Nintendo Switch 2"
	case strings.Contains(t, "switch") || strings.Contains(t, "nintendo switch"):
		return "Nintendo Switch"
	}
	return ""
}

// deriveBrandAndType maps the title to manufacturer and product line.
func deriveBrandAndType(title string) (brand, productType string) {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "switch") || strings.Contains(t, "nintendo"):
		return "Nintendo", "Console Nintendo Switch"
	case strings.Contains(t, "xbox"):
		return "Microsoft", "Console Xbox"
	case strings.Contains(t, "playstation") || strings.Contains(t, "ps5"):
		return "Sony", "Console PlayStation"
	}
	return "", ""
}

// deriveColor returns the first known color named in the title,
// capitalized the way the snapshots carry it.
func deriveColor(title string) string {
	t := strings.ToLower(title)
	for _, c := range productColors {
		if strings.Contains(t, c) {
			return strings.ToUpper(c[:1]) + c[1:]
		}
	}
	return ""
}

// deriveDiskReader returns "Sim"/"Não" when the title states whether the
// console has a disc drive, empty when it is silent. The with-disk check
// runs first, "versão com leitor digital" style titles mention both.
func deriveDiskReader(title string) string {
	t := strings.ToLower(title)
	if containsAny(t, withDiskKeywords) {
		return "Sim"
	}
	if containsAny(t, withoutDiskKeywords) {
		return "Não"
	}
	return ""
}

// deriveStorageText extracts a canonical capacity token ("825 GB",
// "1 TB") from the title, empty when none is present. The canonical text
// form keeps Normalize idempotent: re-deriving from it yields itself.
func deriveStorageText(title string) string {
	if m := storageTBPattern.FindStringSubmatch(title); m != nil {
		return m[1] + " TB"
	}
	if m := storageGBPattern.FindStringSubmatch(title); m != nil {
		return m[1] + " GB"
	}
	return ""
}

func deriveControllers(title string) string {
	if title == "" {
		return ""
	}
	if containsAny(strings.ToLower(title), controllerKeywords) {
		return "Sim"
	}
	return "Não"
}

// deriveGames lists the well-known bundled titles the listing names,
// comma-separated in title case.
func deriveGames(title string) string {
	// cases.Caser carries state, do not hoist it to package scope.
	caser := cases.Title(language.BrazilianPortuguese)
	t := strings.ToLower(title)
	var games []string
	for _, g := range bundledGameTitles {
		if strings.Contains(t, g) {
			games = append(games, caser.String(strings.ReplaceAll(g, "'", "")))
		}
	}
	return strings.Join(games, ", ")
}

// deriveMissing fills categorical fields the scraper left empty from the
// listing title. Populated fields are never overwritten, the scraper's
// own classification wins.
func deriveMissing(raw RawRecord) RawRecord {
	title := raw.NomeAnuncio
	if title == "" {
		return raw
	}

	if raw.Modelo == "" {
		raw.Modelo = deriveModel(title)
	}
	if raw.ConsoleType == "" {
		raw.ConsoleType = deriveConsoleType(title)
	}
	if raw.Marca == "" || raw.Tipo == "" {
		brand, productType := deriveBrandAndType(title)
		if raw.Marca == "" {
			raw.Marca = brand
		}
		if raw.Tipo == "" {
			raw.Tipo = productType
		}
	}
	if raw.Cor == "" {
		raw.Cor = deriveColor(title)
	}
	if raw.EspacoArmazenamento == "" {
		raw.EspacoArmazenamento = deriveStorageText(title)
	}
	if raw.ComLeitorDisco == "" {
		raw.ComLeitorDisco = deriveDiskReader(title)
	}
	if raw.IncluiControles == "" {
		raw.IncluiControles = deriveControllers(title)
	}
	if raw.JogosIncluidos == "" {
		raw.JogosIncluidos = deriveGames(title)
	}
	return raw
}
