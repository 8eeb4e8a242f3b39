package store

import "OmegaScreen/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveAsset(_ *model.Asset) error          { return nil }
func (n *NoopStore) GetAsset(_ string) (*model.Asset, error) { return nil, ErrNotFound }
func (n *NoopStore) ListAssets() ([]*model.Asset, error)     { return nil, nil }
func (n *NoopStore) RecordAnalysis(_ *AnalysisRecord) error  { return nil }
func (n *NoopStore) Close() error                            { return nil }
