package store

import (
	"errors"

	"OmegaScreen/internal/model"
)

// ErrNotFound is returned when no asset exists for the requested id.
var ErrNotFound = errors.New("store: asset not found")

// AnalysisRecord is one successful analysis run kept for audit. Correctness
// never reads it back; only the scalar outcome lives on the asset.
type AnalysisRecord struct {
	AssetID    string
	DataScore  float64
	Label      string
	PriceSlope float64
	PriceR     float64
	CVDSlope   float64
	CVDR       float64
	Periods    int
}

// Store persists screened assets and their analysis history.
type Store interface {
	SaveAsset(a *model.Asset) error
	GetAsset(id string) (*model.Asset, error)
	ListAssets() ([]*model.Asset, error)
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
