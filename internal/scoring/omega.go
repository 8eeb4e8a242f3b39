package scoring

import "OmegaScreen/internal/model"

// Pillar weights for the final Omega Score. The data pillar carries half
// the weight; the two metadata pillars share the rest. Manual and automated
// assets use the same weighting.
const (
	weightNarrative  = 0.25
	weightTokenomics = 0.25
	weightData       = 0.50
)

// OmegaScore combines the three pillar scores into the final composite,
// rounded to 2 decimals.
func OmegaScore(narrative, tokenomics, data float64) float64 {
	return round2(narrative*weightNarrative + tokenomics*weightTokenomics + data*weightData)
}

// ScoreAutomated fills an automated asset's metadata-driven sub-scores
// (sector strength, valuation potential, supply risk) and the fixed neutral
// defaults, then recomputes the pillar scores. Safe to call repeatedly on
// metadata refresh; it never touches the data pillar or the state flag.
func ScoreAutomated(a *model.Asset) {
	a.SectorStrength = ptr(SectorStrength(a.Category))
	a.ValueProposition = ptr(NeutralSubScore)
	a.BackingTeam = ptr(NeutralSubScore)
	a.ValuationPotential = ptr(ValuationPotential(a.MarketCap))
	a.TokenUtility = ptr(NeutralSubScore)
	a.SupplyRisk = ptr(SupplyRisk(a.CirculatingSupply, a.TotalSupply))
	Assemble(a)
}

// Assemble recomputes the derived scores from the sub-scores: both metadata
// pillar scores always, and the omega score iff the asset is Complete. All
// six metadata sub-scores must be present.
func Assemble(a *model.Asset) {
	a.NarrativeScore = PillarScore(*a.SectorStrength, *a.ValueProposition, *a.BackingTeam)
	a.TokenomicsScore = PillarScore(*a.ValuationPotential, *a.TokenUtility, *a.SupplyRisk)
	if a.State == model.StateComplete && a.DataScore != nil {
		a.OmegaScore = ptr(OmegaScore(a.NarrativeScore, a.TokenomicsScore, *a.DataScore))
	} else {
		a.OmegaScore = nil
	}
}

// ApplyAnalysis records a successful series analysis: stores the data
// signal as the data pillar, fires the one-time AwaitingData -> Complete
// transition, and recomputes the omega score. Re-applying while already
// Complete overwrites data and omega scores in place; the state never
// reverts.
func ApplyAnalysis(a *model.Asset, res *model.Analysis) {
	a.DataSignal = ptr(res.DataScore)
	a.DataScore = ptr(res.DataScore)
	if a.State == model.StateAwaitingData {
		a.State = model.StateComplete
	}
	Assemble(a)
}

func ptr(v float64) *float64 { return &v }
