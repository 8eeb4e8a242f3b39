package model

import (
	"fmt"
	"time"
)

// Source indicates how an asset entered the screener.
type Source string

const (
	SourceManual    Source = "manual"
	SourceAutomated Source = "automated"
)

// AvailabilityState gates when a final Omega Score may be shown.
type AvailabilityState string

const (
	StateAwaitingData AvailabilityState = "awaiting_data"
	StateComplete     AvailabilityState = "complete"
)

// Metadata is the market record handed to the screener by the upstream data
// collaborator. All figures are nullable; absent values degrade to the most
// conservative scores instead of failing.
type Metadata struct {
	Category          string
	MarketCap         *float64
	CirculatingSupply *float64
	TotalSupply       *float64
}

// Asset is one screened project with its sub-scores, pillar scores, and
// final Omega Score.
type Asset struct {
	ID       string
	Name     string
	Ticker   string
	Category string
	Source   Source

	MarketCap         *float64
	CirculatingSupply *float64
	TotalSupply       *float64

	// Sub-scores on the 1-10 scale. Nil until computed (automated) or
	// supplied by the operator (manual).
	SectorStrength     *float64
	ValueProposition   *float64
	BackingTeam        *float64
	ValuationPotential *float64
	TokenUtility       *float64
	SupplyRisk         *float64
	DataSignal         *float64

	// Pillar scores, always derived from the sub-scores above and rounded
	// to 2 decimals. Never hand-set.
	NarrativeScore  float64
	TokenomicsScore float64
	DataScore       *float64

	// OmegaScore is non-nil iff State is StateComplete.
	OmegaScore *float64
	State      AvailabilityState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoreRecord is the pillar/score view consumed by the UI and API
// collaborators.
type ScoreRecord struct {
	NarrativeScore  float64
	TokenomicsScore float64
	DataScore       *float64
	OmegaScore      *float64
	State           AvailabilityState
}

// Scores returns the collaborator-facing score record.
func (a *Asset) Scores() ScoreRecord {
	return ScoreRecord{
		NarrativeScore:  a.NarrativeScore,
		TokenomicsScore: a.TokenomicsScore,
		DataScore:       a.DataScore,
		OmegaScore:      a.OmegaScore,
		State:           a.State,
	}
}

// OmegaDisplay renders the final score, or the explicit pending sentinel
// while series data is still awaited. Never a numeric placeholder.
func (a *Asset) OmegaDisplay() string {
	if a.OmegaScore == nil {
		return "pending"
	}
	return fmt.Sprintf("%.2f", *a.OmegaScore)
}
