package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Capacity tokens as the listings write them: "825 GB", "1TB", "1,5 tb".
// The TB pattern must be tried first, a bare GB scan would also match the
// number in "1 TB".
var (
	storageTBPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*TB`)
	storageGBPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*GB`)
)

// ParsePrice converts free-form price text into a canonical decimal value.
// The sources disagree on separator conventions ("3999.00", "4.499",
// "449,90"), so the rules are ordered:
//
//  1. a comma is always the decimal separator, dots are thousands;
//  2. otherwise a single dot followed by exactly two digits is a decimal
//     separator;
//  3. otherwise every dot is a thousands separator.
//
// Unparseable or empty text yields 0. The two-digit-fraction rule cannot
// distinguish "12.34" (decimal) from a thousands-separated 12340-class
// value; downstream behavior depends on this exact reading, keep it.
func ParsePrice(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	s = strings.Join(strings.Fields(s), "")

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".")-1 == 2:
		// already canonical: single dot with a 2-digit fraction
	default:
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseStorageGB scans text for a capacity token and returns the value in
// gigabytes. TB values are scaled by 1024. The second return value is
// false when no token is found.
func ParseStorageGB(text string) (float64, bool) {
	if m := storageTBPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseCapacityNumber(m[1]); ok {
			return v * 1024, true
		}
	}
	if m := storageGBPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseCapacityNumber(m[1]); ok {
			return v, true
		}
	}
	return 0, false
}

func parseCapacityNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// IncludesGames reports whether the bundled-games text names anything.
// Presence only, the contents are not interpreted.
func IncludesGames(bundleText string) bool {
	return strings.TrimSpace(bundleText) != ""
}

// Normalize derives the canonical record for one raw listing. Pure and
// idempotent: re-normalizing a record's raw fields yields identical
// derived values. Categorical fields the scraper left empty are
// re-derived from the listing title where the title names them.
func Normalize(raw RawRecord, index int) Record {
	raw = deriveMissing(raw)

	rec := Record{
		RawRecord:     raw,
		PriceCash:     ParsePrice(raw.PrecoVista),
		IncludesGames: IncludesGames(raw.JogosIncluidos),
		OriginalIndex: index,
	}
	if gb, ok := ParseStorageGB(raw.EspacoArmazenamento); ok {
		rec.StorageGB = &gb
	}
	return rec
}

// Load concatenates the given source lists in order and normalizes every
// record, assigning OriginalIndex as the 0-based position in the combined
// sequence. Listings sharing a link_pagina are collapsed to the first
// occurrence, the acquisition pipeline dedups the same way before writing
// snapshots but merged sources can reintroduce overlap.
func Load(sources ...[]RawRecord) []Record {
	total := 0
	for _, src := range sources {
		total += len(src)
	}

	records := make([]Record, 0, total)
	seenLinks := make(map[string]struct{}, total)
	for _, src := range sources {
		for _, raw := range src {
			if raw.LinkPagina != "" {
				if _, dup := seenLinks[raw.LinkPagina]; dup {
					continue
				}
				seenLinks[raw.LinkPagina] = struct{}{}
			}
			records = append(records, Normalize(raw, len(records)))
		}
	}
	return records
}
