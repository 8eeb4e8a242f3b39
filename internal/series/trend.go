package series

import (
	"math"

	"OmegaScreen/internal/model"
)

// epsilon guards the degenerate denominators of a flat series.
const epsilon = 1e-12

// AnalyzeTrends fits trend lines over the most recent MinPeriods rows: an
// OLS fit of close price against sequential position 0..MinPeriods-1, and
// an OLS fit of the running cumulative volume delta over the same window.
// Rows must already be validated (len >= MinPeriods).
func AnalyzeTrends(rows []model.SeriesRow) (price, cvd model.TrendFit) {
	window := rows[len(rows)-MinPeriods:]

	closes := make([]float64, MinPeriods)
	cvds := make([]float64, MinPeriods)
	running := 0.0
	for i, row := range window {
		closes[i] = row.Close
		running += row.VolumeDelta
		cvds[i] = running
	}
	return fitOLS(closes), fitOLS(cvds)
}

// fitOLS computes the least-squares slope and correlation coefficient of y
// against its index. A flat series has no trend and no meaningful
// correlation, so both come back as zero rather than failing.
func fitOLS(y []float64) model.TrendFit {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
		sumYY += v * v
	}

	denX := n*sumXX - sumX*sumX
	denY := n*sumYY - sumY*sumY
	if denX <= epsilon || denY <= epsilon {
		return model.TrendFit{}
	}

	num := n*sumXY - sumX*sumY
	return model.TrendFit{
		Slope: num / denX,
		R:     num / math.Sqrt(denX*denY),
	}
}
