package source

import "context"

// Record is one asset's market metadata as supplied by the upstream fetch
// job, keyed by ticker. All figures are nullable.
type Record struct {
	Name              string
	Ticker            string
	Category          string
	MarketCap         *float64
	CirculatingSupply *float64
	TotalSupply       *float64
}

// Source supplies already-fetched market metadata for the tracked assets.
// Implementations must not perform network I/O of their own; live fetching
// belongs to an external collaborator.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
	Name() string
}

// StaticSource returns a fixed record set, for development and testing.
type StaticSource struct {
	Records []Record
}

func (s *StaticSource) Fetch(_ context.Context) ([]Record, error) {
	return s.Records, nil
}

func (s *StaticSource) Name() string { return "static" }
