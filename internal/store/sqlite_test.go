package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OmegaScreen/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func fp(v float64) *float64 { return &v }

func sampleAsset(id string) *model.Asset {
	now := time.Now().Truncate(time.Second)
	return &model.Asset{
		ID:                 id,
		Name:               "Omega Test",
		Ticker:             "omg",
		Category:           "ai",
		Source:             model.SourceAutomated,
		MarketCap:          fp(42_000_000),
		CirculatingSupply:  fp(800),
		TotalSupply:        fp(1000),
		SectorStrength:     fp(9),
		ValueProposition:   fp(5),
		BackingTeam:        fp(5),
		ValuationPotential: fp(9),
		TokenUtility:       fp(5),
		SupplyRisk:         fp(9),
		NarrativeScore:     6.33,
		TokenomicsScore:    7.67,
		State:              model.StateAwaitingData,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestSaveAndGetAsset(t *testing.T) {
	st := newTestStore(t)

	a := sampleAsset("a1")
	require.NoError(t, st.SaveAsset(a))

	got, err := st.GetAsset("a1")
	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Name)
	assert.Equal(t, a.Ticker, got.Ticker)
	assert.Equal(t, a.Source, got.Source)
	assert.Equal(t, a.State, got.State)
	require.NotNil(t, got.MarketCap)
	assert.Equal(t, *a.MarketCap, *got.MarketCap)
	assert.Equal(t, a.NarrativeScore, got.NarrativeScore)
	assert.Equal(t, a.TokenomicsScore, got.TokenomicsScore)
	// never scored: nullable columns come back nil
	assert.Nil(t, got.DataScore)
	assert.Nil(t, got.OmegaScore)
	assert.Equal(t, a.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestSaveAssetUpsert(t *testing.T) {
	st := newTestStore(t)

	a := sampleAsset("a1")
	require.NoError(t, st.SaveAsset(a))

	a.DataSignal = fp(10)
	a.DataScore = fp(10)
	a.OmegaScore = fp(8.5)
	a.State = model.StateComplete
	a.UpdatedAt = a.UpdatedAt.Add(time.Minute)
	require.NoError(t, st.SaveAsset(a))

	got, err := st.GetAsset("a1")
	require.NoError(t, err)
	assert.Equal(t, model.StateComplete, got.State)
	require.NotNil(t, got.OmegaScore)
	assert.Equal(t, 8.5, *got.OmegaScore)

	list, err := st.ListAssets()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetAssetNotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.GetAsset("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAssetsOrdered(t *testing.T) {
	st := newTestStore(t)

	for i, name := range []string{"Zeta", "Alpha"} {
		a := sampleAsset(string(rune('a' + i)))
		a.Name = name
		a.Ticker = name
		require.NoError(t, st.SaveAsset(a))
	}

	list, err := st.ListAssets()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)
}

func TestRecordAnalysis(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveAsset(sampleAsset("a1")))

	err := st.RecordAnalysis(&AnalysisRecord{
		AssetID:    "a1",
		DataScore:  10,
		Label:      "bullish_divergence",
		PriceSlope: 0.001,
		PriceR:     0.02,
		CVDSlope:   10,
		CVDR:       0.999,
		Periods:    90,
	})
	assert.NoError(t, err)
}
