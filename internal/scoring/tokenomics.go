package scoring

// ValuationPotential scores upside potential from USD market cap: the
// smaller the cap, the higher the score. Buckets are upper-exclusive, so a
// cap of exactly 20M lands in the <50M bucket. A nil or non-positive cap is
// treated as worst case.
func ValuationPotential(marketCap *float64) float64 {
	if marketCap == nil || *marketCap <= 0 {
		return 1
	}
	switch mc := *marketCap; {
	case mc < 20_000_000:
		return 10
	case mc < 50_000_000:
		return 9
	case mc < 100_000_000:
		return 8
	case mc < 200_000_000:
		return 7
	case mc < 500_000_000:
		return 5
	case mc < 1_000_000_000:
		return 3
	default:
		return 1
	}
}

// SupplyRisk scores dilution risk from the circulating/total supply ratio:
// the more of the supply already circulating, the lower the risk. Missing
// or non-positive denominators degrade to the highest-risk score.
func SupplyRisk(circulating, total *float64) float64 {
	if circulating == nil || total == nil || *total <= 0 {
		return 1
	}
	switch ratio := *circulating / *total; {
	case ratio >= 0.90:
		return 10
	case ratio >= 0.75:
		return 9
	case ratio >= 0.50:
		return 7
	case ratio >= 0.25:
		return 5
	case ratio >= 0.10:
		return 2
	default:
		return 1
	}
}
