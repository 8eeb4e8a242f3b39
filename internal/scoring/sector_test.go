package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectorStrength(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     float64
	}{
		{"hot sector ai", "AI", 9},
		{"hot sector depin", "DePIN", 9},
		{"hot sector rwa", "rwa", 9},
		{"established l1", "L1", 7},
		{"established l2", "l2", 7},
		{"established gamefi", "GameFi", 7},
		{"established infrastructure", "Infrastructure", 7},
		{"unknown sector", "memecoin", 4},
		{"empty label", "", 4},
		{"whitespace only", "   ", 4},
		{"padded label", "  ai  ", 9},
		{"punctuated miss", "De  PIN!", 4}, // normalizes to de-pin, not depin
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectorStrength(tt.category))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DePIN", "depin"},
		{"De  PIN!", "de-pin"},
		{"Real World Assets", "real-world-assets"},
		{"  AI  ", "ai"},
		{"l1/l2", "l1-l2"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeCategory(tt.in), "input %q", tt.in)
	}
}
