package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OmegaScreen/internal/model"
)

func fit(slope, r float64) model.TrendFit { return model.TrendFit{Slope: slope, R: r} }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		price     model.TrendFit
		cvd       model.TrendFit
		wantScore float64
		wantLabel model.DivergenceLabel
	}{
		{"strong accumulation, flat price", fit(0, 0), fit(0.2, 1), 10, model.DivergenceBullish},
		{"accumulation into falling price", fit(-0.05, 1), fit(0.05, 1), 9, model.DivergenceBullish},
		{"strong confluence", fit(0.05, 1), fit(0.2, 1), 7, model.ConfluenceBullish},
		{"mild confluence", fit(0.05, 1), fit(0.05, 1), 6, model.ConfluenceBullish},
		{"distribution into rising price", fit(0.2, 1), fit(-0.05, 1), 3, model.DivergenceBearish},
		{"heavy distribution", fit(0, 0), fit(-0.2, 1), 2, model.DivergenceBearish},
		{"no signal", fit(0.01, 1), fit(0.01, 1), 5, model.DivergenceNeutral},
		{"flat everything", fit(0, 0), fit(0, 0), 5, model.DivergenceNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label := Classify(tt.price, tt.cvd)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestClassifyOrderEncodesPriority(t *testing.T) {
	// strong cvd with falling price satisfies both of the first two bands;
	// the stronger one must win
	score, label := Classify(fit(-0.05, 1), fit(0.2, 1))
	assert.Equal(t, 10.0, score)
	assert.Equal(t, model.DivergenceBullish, label)

	// strong cvd with strongly rising price satisfies bands 3 and 4
	score, label = Classify(fit(0.2, 1), fit(0.2, 1))
	assert.Equal(t, 7.0, score)
	assert.Equal(t, model.ConfluenceBullish, label)
}

func TestClassifyWeighsByCorrelation(t *testing.T) {
	// a steep but noisy cvd fit is discounted below the weak threshold
	score, label := Classify(fit(0, 0), fit(0.2, 0.05))
	assert.Equal(t, 5.0, score)
	assert.Equal(t, model.DivergenceNeutral, label)
}

func TestAnalyzePipeline(t *testing.T) {
	t.Run("flat price with steady accumulation scores 10", func(t *testing.T) {
		raw := buildSeries(90, ",", flat(100), flat(10))
		res, err := Analyze(raw)
		require.NoError(t, err)
		assert.Equal(t, 10.0, res.DataScore)
		assert.Equal(t, model.DivergenceBullish, res.Label)
		assert.Equal(t, MinPeriods, res.PeriodsAnalyzed)
		assert.InDelta(t, 10.0, res.CVD.Slope, 1e-9)
	})

	t.Run("rising price with steady distribution scores 3", func(t *testing.T) {
		raw := buildSeries(90, ",", rising(1), flat(-10))
		res, err := Analyze(raw)
		require.NoError(t, err)
		assert.Equal(t, 3.0, res.DataScore)
		assert.Equal(t, model.DivergenceBearish, res.Label)
	})

	t.Run("rejection carries the validation error through", func(t *testing.T) {
		_, err := Analyze(buildSeries(89, ",", flat(1), flat(1)))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, InsufficientPeriods, ve.Kind)
	})
}
