package series

import (
	"math"

	"OmegaScreen/internal/model"
)

// Thresholds on the confidence-weighted trends. The bands below overlap;
// evaluation order encodes priority.
const (
	strongTrend = 0.1
	weakTrend   = 0.02
)

// Classify turns the fitted price and CVD trends into a data signal score
// (1-10) and a divergence label. Each trend is weighted by |r| so a steep
// but noisy fit cannot outrank a clean one. First match wins.
func Classify(price, cvd model.TrendFit) (float64, model.DivergenceLabel) {
	priceTrend := price.Slope * math.Abs(price.R)
	cvdTrend := cvd.Slope * math.Abs(cvd.R)

	switch {
	case cvdTrend > strongTrend && priceTrend < weakTrend:
		// Buying pressure rising while price is flat or falling: the
		// strongest accumulation signal.
		return 10, model.DivergenceBullish
	case cvdTrend > weakTrend && priceTrend < -weakTrend:
		return 9, model.DivergenceBullish
	case cvdTrend > strongTrend && priceTrend > weakTrend:
		return 7, model.ConfluenceBullish
	case cvdTrend > weakTrend && priceTrend > weakTrend:
		return 6, model.ConfluenceBullish
	case cvdTrend < -weakTrend && priceTrend > strongTrend:
		return 3, model.DivergenceBearish
	case cvdTrend < -strongTrend:
		return 2, model.DivergenceBearish
	default:
		return 5, model.DivergenceNeutral
	}
}

// Analyze runs the full series pipeline on raw pasted text: ingestion,
// trend fitting over the tail window, and divergence classification. On
// rejection the returned error is a *ValidationError and nothing is scored.
func Analyze(raw string) (*model.Analysis, error) {
	rows, err := Ingest(raw)
	if err != nil {
		return nil, err
	}
	price, cvd := AnalyzeTrends(rows)
	score, label := Classify(price, cvd)
	return &model.Analysis{
		DataScore:       score,
		Label:           label,
		Price:           price,
		CVD:             cvd,
		PeriodsAnalyzed: MinPeriods,
	}, nil
}
