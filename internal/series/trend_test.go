package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OmegaScreen/internal/model"
)

func makeRows(n int, closeAt, deltaAt func(i int) float64) []model.SeriesRow {
	rows := make([]model.SeriesRow, n)
	for i := range rows {
		rows[i] = model.SeriesRow{Close: closeAt(i), VolumeDelta: deltaAt(i)}
	}
	return rows
}

func TestFitOLS(t *testing.T) {
	t.Run("perfect linear series", func(t *testing.T) {
		y := make([]float64, 90)
		for i := range y {
			y[i] = 3*float64(i) + 7
		}
		fit := fitOLS(y)
		assert.InDelta(t, 3.0, fit.Slope, 1e-9)
		assert.InDelta(t, 1.0, fit.R, 1e-9)
	})

	t.Run("perfect negative slope", func(t *testing.T) {
		y := make([]float64, 90)
		for i := range y {
			y[i] = 100 - 0.5*float64(i)
		}
		fit := fitOLS(y)
		assert.InDelta(t, -0.5, fit.Slope, 1e-9)
		assert.InDelta(t, -1.0, fit.R, 1e-9)
	})

	t.Run("flat series fits to zero", func(t *testing.T) {
		y := make([]float64, 90)
		for i := range y {
			y[i] = 42.0
		}
		fit := fitOLS(y)
		assert.Zero(t, fit.Slope)
		assert.Zero(t, fit.R)
	})
}

func TestAnalyzeTrends(t *testing.T) {
	t.Run("cvd is the running sum of volume deltas", func(t *testing.T) {
		// constant +10 delta per period: cvd grows linearly at slope 10
		rows := makeRows(90, flat(50), flat(10))
		price, cvd := AnalyzeTrends(rows)

		assert.Zero(t, price.Slope)
		assert.Zero(t, price.R)
		assert.InDelta(t, 10.0, cvd.Slope, 1e-9)
		assert.InDelta(t, 1.0, cvd.R, 1e-9)
	})

	t.Run("only the most recent window is fitted", func(t *testing.T) {
		// 60 leading rows of steep decline, then 90 rows of clean rise;
		// the fit must see only the tail
		closeAt := func(i int) float64 {
			if i < 60 {
				return 1000 - 10*float64(i)
			}
			return float64(i - 60)
		}
		rows := makeRows(150, closeAt, flat(0))
		price, _ := AnalyzeTrends(rows)
		assert.InDelta(t, 1.0, price.Slope, 1e-9)
		assert.InDelta(t, 1.0, price.R, 1e-9)
	})

	t.Run("alternating deltas cancel out", func(t *testing.T) {
		deltaAt := func(i int) float64 {
			if i%2 == 0 {
				return 5
			}
			return -5
		}
		rows := makeRows(90, rising(1), deltaAt)
		price, cvd := AnalyzeTrends(rows)
		require.InDelta(t, 1.0, price.Slope, 1e-9)
		// cvd oscillates between 5 and 0 with no drift
		assert.InDelta(t, 0.0, cvd.Slope, 0.01)
	})
}
