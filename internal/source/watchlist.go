package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WatchlistSource reads asset metadata from a YAML watchlist file that an
// external fetch job keeps up to date.
type WatchlistSource struct {
	Path string
}

func NewWatchlistSource(path string) *WatchlistSource {
	return &WatchlistSource{Path: path}
}

func (w *WatchlistSource) Name() string { return "watchlist" }

type watchlistFile struct {
	Assets []watchlistEntry `yaml:"assets"`
}

type watchlistEntry struct {
	Name              string   `yaml:"name"`
	Ticker            string   `yaml:"ticker"`
	Category          string   `yaml:"category"`
	MarketCap         *float64 `yaml:"market_cap"`
	CirculatingSupply *float64 `yaml:"circulating_supply"`
	TotalSupply       *float64 `yaml:"total_supply"`
}

// Fetch parses the watchlist file into metadata records.
func (w *WatchlistSource) Fetch(_ context.Context) ([]Record, error) {
	data, err := os.ReadFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}
	var file watchlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}

	records := make([]Record, 0, len(file.Assets))
	for _, e := range file.Assets {
		if e.Ticker == "" {
			return nil, fmt.Errorf("watchlist entry %q is missing a ticker", e.Name)
		}
		records = append(records, Record{
			Name:              e.Name,
			Ticker:            e.Ticker,
			Category:          e.Category,
			MarketCap:         e.MarketCap,
			CirculatingSupply: e.CirculatingSupply,
			TotalSupply:       e.TotalSupply,
		})
	}
	return records, nil
}
