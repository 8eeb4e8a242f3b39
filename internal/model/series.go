package model

// SeriesRow is one validated (time-label, close, volume delta) observation.
// Row order is taken as chronological as supplied; the time label is opaque.
type SeriesRow struct {
	Time        string
	Close       float64
	VolumeDelta float64
}

// TrendFit is an ordinary-least-squares fit of a series against its
// sequential position: the slope and the correlation coefficient.
type TrendFit struct {
	Slope float64
	R     float64
}

// DivergenceLabel classifies the price/CVD relationship over the analysis
// window.
type DivergenceLabel string

const (
	DivergenceBullish DivergenceLabel = "bullish_divergence"
	ConfluenceBullish DivergenceLabel = "confluence_bullish"
	DivergenceBearish DivergenceLabel = "bearish_divergence"
	DivergenceNeutral DivergenceLabel = "neutral"
)

// Analysis is the outcome of one successful series analysis run.
type Analysis struct {
	DataScore       float64
	Label           DivergenceLabel
	Price           TrendFit
	CVD             TrendFit
	PeriodsAnalyzed int
}
