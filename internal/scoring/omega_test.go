package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OmegaScreen/internal/model"
)

func TestPillarScore(t *testing.T) {
	assert.Equal(t, 8.0, PillarScore(9, 7, 8))
	assert.Equal(t, 8.67, PillarScore(10, 9, 7))
	assert.Equal(t, 5.0, PillarScore(5, 5, 5))
	assert.Equal(t, 1.0, PillarScore(1, 1, 1))
}

func TestOmegaScore(t *testing.T) {
	assert.Equal(t, 8.25, OmegaScore(8, 7, 9))
	assert.Equal(t, 5.0, OmegaScore(5, 5, 5))
	// data pillar carries twice the weight of each metadata pillar
	assert.Equal(t, 7.5, OmegaScore(5, 5, 10))
}

func TestScoreAutomated(t *testing.T) {
	a := &model.Asset{
		Category:          "AI",
		MarketCap:         fp(42_000_000),
		CirculatingSupply: fp(800),
		TotalSupply:       fp(1000),
		State:             model.StateAwaitingData,
	}
	ScoreAutomated(a)

	require.NotNil(t, a.SectorStrength)
	assert.Equal(t, 9.0, *a.SectorStrength)
	assert.Equal(t, NeutralSubScore, *a.ValueProposition)
	assert.Equal(t, NeutralSubScore, *a.BackingTeam)
	assert.Equal(t, 9.0, *a.ValuationPotential)
	assert.Equal(t, NeutralSubScore, *a.TokenUtility)
	assert.Equal(t, 9.0, *a.SupplyRisk)

	// narrative = mean(9,5,5), tokenomics = mean(9,5,9)
	assert.Equal(t, 6.33, a.NarrativeScore)
	assert.Equal(t, 7.67, a.TokenomicsScore)

	// no series analysis yet: omega stays absent
	assert.Nil(t, a.OmegaScore)
	assert.Equal(t, model.StateAwaitingData, a.State)
}

func TestApplyAnalysisTransition(t *testing.T) {
	a := &model.Asset{
		Category:    "rwa",
		MarketCap:   fp(10_000_000),
		TotalSupply: fp(100),
		State:       model.StateAwaitingData,
	}
	ScoreAutomated(a)
	require.Nil(t, a.OmegaScore)

	res := &model.Analysis{DataScore: 10, Label: model.DivergenceBullish}
	ApplyAnalysis(a, res)

	assert.Equal(t, model.StateComplete, a.State)
	require.NotNil(t, a.DataScore)
	assert.Equal(t, 10.0, *a.DataScore)
	require.NotNil(t, a.OmegaScore)
	want := OmegaScore(a.NarrativeScore, a.TokenomicsScore, 10)
	assert.Equal(t, want, *a.OmegaScore)

	// re-applying the identical result changes nothing and never reverts
	// the state
	first := *a.OmegaScore
	ApplyAnalysis(a, res)
	assert.Equal(t, model.StateComplete, a.State)
	assert.Equal(t, first, *a.OmegaScore)

	// a weaker follow-up analysis overwrites scores but keeps Complete
	ApplyAnalysis(a, &model.Analysis{DataScore: 3, Label: model.DivergenceBearish})
	assert.Equal(t, model.StateComplete, a.State)
	assert.Equal(t, 3.0, *a.DataScore)
	assert.Equal(t, OmegaScore(a.NarrativeScore, a.TokenomicsScore, 3), *a.OmegaScore)
}

func TestAssembleGating(t *testing.T) {
	a := &model.Asset{
		SectorStrength:     fp(9),
		ValueProposition:   fp(7),
		BackingTeam:        fp(8),
		ValuationPotential: fp(10),
		TokenUtility:       fp(9),
		SupplyRisk:         fp(7),
		DataScore:          fp(8),
		State:              model.StateAwaitingData,
	}

	// a data score alone is not enough; the state gates the omega score
	Assemble(a)
	assert.Equal(t, 8.0, a.NarrativeScore)
	assert.Equal(t, 8.67, a.TokenomicsScore)
	assert.Nil(t, a.OmegaScore)

	a.State = model.StateComplete
	Assemble(a)
	require.NotNil(t, a.OmegaScore)
	assert.Equal(t, round2(8.0*0.25+8.67*0.25+8*0.50), *a.OmegaScore)
}
