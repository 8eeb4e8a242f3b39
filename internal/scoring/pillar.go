package scoring

import "math"

// NeutralSubScore is the fixed value for the sub-scores that deliberately
// stay unautomated on automated assets (value proposition, backing & team,
// token utility). Qualitative metrics get no automated proxy.
const NeutralSubScore = 5.0

// PillarScore is the arithmetic mean of a pillar's three sub-scores,
// rounded to 2 decimals. Sub-scores are never weighted against each other.
func PillarScore(a, b, c float64) float64 {
	return round2((a + b + c) / 3)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
