package scoring

import "strings"

// Sector strength table: hot sectors score 9, established sectors 7,
// everything else (including empty or unrecognized labels) 4.
var sectorScores = map[string]float64{
	"ai":             9,
	"depin":          9,
	"rwa":            9,
	"l1":             7,
	"l2":             7,
	"gamefi":         7,
	"infrastructure": 7,
}

const sectorDefault = 4.0

// SectorStrength maps a free-text category label to a sector strength score.
// Every input maps to a score; there is no error path.
func SectorStrength(category string) float64 {
	if score, ok := sectorScores[normalizeCategory(category)]; ok {
		return score
	}
	return sectorDefault
}

// normalizeCategory lower-cases the label and collapses runs of whitespace
// and punctuation into a single separator, e.g. "De  PIN!" -> "de-pin".
func normalizeCategory(category string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(category) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingSep = false
		default:
			pendingSep = true
		}
	}
	return b.String()
}
