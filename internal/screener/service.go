package screener

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"OmegaScreen/internal/model"
	"OmegaScreen/internal/scoring"
	"OmegaScreen/internal/series"
	"OmegaScreen/internal/source"
	"OmegaScreen/internal/store"
)

// Service owns the screened asset set. Scoring itself is pure; the service
// adds the only shared mutable state (the per-asset records), guaranteeing
// at most one in-flight recomputation per asset id.
type Service struct {
	mu       sync.RWMutex
	assets   map[string]*model.Asset
	byTicker map[string]string // automated assets only

	locks keyedMutex
	store store.Store
}

// New creates a Service backed by the given store, loading any previously
// persisted assets.
func New(st store.Store) (*Service, error) {
	persisted, err := st.ListAssets()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	s := &Service{
		assets:   make(map[string]*model.Asset, len(persisted)),
		byTicker: make(map[string]string),
		store:    st,
	}
	for _, a := range persisted {
		s.assets[a.ID] = a
		if a.Source == model.SourceAutomated && a.Ticker != "" {
			s.byTicker[a.Ticker] = a.ID
		}
	}
	if len(persisted) > 0 {
		log.Info().Int("assets", len(persisted)).Msg("loaded persisted assets")
	}
	return s, nil
}

// CreateAutomated registers a new automated asset from a metadata record.
// Narrative and tokenomics pillars are scored immediately; the asset starts
// in AwaitingData with no omega score until a series analysis succeeds.
func (s *Service) CreateAutomated(rec source.Record) (model.Asset, error) {
	if rec.Ticker == "" {
		return model.Asset{}, fmt.Errorf("automated asset needs a ticker")
	}

	now := time.Now()
	a := &model.Asset{
		ID:                uuid.NewString(),
		Name:              rec.Name,
		Ticker:            rec.Ticker,
		Category:          rec.Category,
		Source:            model.SourceAutomated,
		MarketCap:         rec.MarketCap,
		CirculatingSupply: rec.CirculatingSupply,
		TotalSupply:       rec.TotalSupply,
		State:             model.StateAwaitingData,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	scoring.ScoreAutomated(a)

	s.mu.Lock()
	if existing, ok := s.byTicker[a.Ticker]; ok {
		s.mu.Unlock()
		return model.Asset{}, fmt.Errorf("ticker %s already tracked as asset %s", a.Ticker, existing)
	}
	s.assets[a.ID] = a
	s.byTicker[a.Ticker] = a.ID
	s.mu.Unlock()

	s.persist(a)
	log.Info().Str("asset", a.ID).Str("ticker", a.Ticker).
		Float64("narrative", a.NarrativeScore).Float64("tokenomics", a.TokenomicsScore).
		Msg("automated asset created")
	return *a, nil
}

// ManualInput carries the operator-supplied sub-scores for a manually
// entered asset. All seven must be in [1,10].
type ManualInput struct {
	Name     string
	Ticker   string
	Category string

	SectorStrength     float64
	ValueProposition   float64
	BackingTeam        float64
	ValuationPotential float64
	TokenUtility       float64
	SupplyRisk         float64
	DataSignal         float64
}

func (in *ManualInput) validate() error {
	checks := map[string]float64{
		"sector_strength":     in.SectorStrength,
		"value_proposition":   in.ValueProposition,
		"backing_team":        in.BackingTeam,
		"valuation_potential": in.ValuationPotential,
		"token_utility":       in.TokenUtility,
		"supply_risk":         in.SupplyRisk,
		"data_signal":         in.DataSignal,
	}
	for name, v := range checks {
		if v < 1 || v > 10 {
			return fmt.Errorf("%s must be in [1,10], got %g", name, v)
		}
	}
	return nil
}

// CreateManual registers a manually entered asset. Every sub-score,
// including the data pillar, comes from the operator, so the asset is
// created already Complete with its omega score computed.
func (s *Service) CreateManual(in ManualInput) (model.Asset, error) {
	if err := in.validate(); err != nil {
		return model.Asset{}, err
	}

	now := time.Now()
	a := &model.Asset{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		Ticker:             in.Ticker,
		Category:           in.Category,
		Source:             model.SourceManual,
		SectorStrength:     ptr(in.SectorStrength),
		ValueProposition:   ptr(in.ValueProposition),
		BackingTeam:        ptr(in.BackingTeam),
		ValuationPotential: ptr(in.ValuationPotential),
		TokenUtility:       ptr(in.TokenUtility),
		SupplyRisk:         ptr(in.SupplyRisk),
		DataSignal:         ptr(in.DataSignal),
		DataScore:          ptr(in.DataSignal),
		State:              model.StateComplete,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	scoring.Assemble(a)

	s.mu.Lock()
	s.assets[a.ID] = a
	s.mu.Unlock()

	s.persist(a)
	log.Info().Str("asset", a.ID).Str("name", a.Name).
		Str("omega", a.OmegaDisplay()).Msg("manual asset created")
	return *a, nil
}

// SubmitSeries runs the series pipeline for one asset and, on success,
// applies the data signal under the asset's recompute lock. A rejected
// submission (returned as a *series.ValidationError) leaves the asset's
// state and scores untouched.
func (s *Service) SubmitSeries(id, raw string) (*model.Analysis, error) {
	defer s.locks.lock(id).Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	analysis, err := series.Analyze(raw)
	if err != nil {
		log.Warn().Str("asset", id).Err(err).Msg("series submission rejected")
		return nil, err
	}

	next := *a
	scoring.ApplyAnalysis(&next, analysis)
	next.UpdatedAt = time.Now()
	s.swap(&next)

	if err := s.store.RecordAnalysis(&store.AnalysisRecord{
		AssetID:    id,
		DataScore:  analysis.DataScore,
		Label:      string(analysis.Label),
		PriceSlope: analysis.Price.Slope,
		PriceR:     analysis.Price.R,
		CVDSlope:   analysis.CVD.Slope,
		CVDR:       analysis.CVD.R,
		Periods:    analysis.PeriodsAnalyzed,
	}); err != nil {
		log.Error().Err(err).Str("asset", id).Msg("record analysis")
	}

	log.Info().Str("asset", id).Float64("data_score", analysis.DataScore).
		Str("label", string(analysis.Label)).Str("omega", next.OmegaDisplay()).
		Msg("series analysis applied")
	return analysis, nil
}

// RefreshMetadata re-scores an automated asset's narrative and tokenomics
// pillars from fresh market metadata. The data pillar and availability
// state are never touched; if the asset is already Complete its omega score
// is recomputed from the new pillar scores.
func (s *Service) RefreshMetadata(id string, md model.Metadata) error {
	defer s.locks.lock(id).Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return err
	}
	if a.Source != model.SourceAutomated {
		return fmt.Errorf("asset %s is manually scored; refusing metadata refresh", id)
	}

	next := *a
	next.Category = md.Category
	next.MarketCap = md.MarketCap
	next.CirculatingSupply = md.CirculatingSupply
	next.TotalSupply = md.TotalSupply
	scoring.ScoreAutomated(&next)
	next.UpdatedAt = time.Now()
	s.swap(&next)
	return nil
}

// RefreshAll pulls the current metadata records from the source and scores
// them with bounded parallelism: known tickers are refreshed, unknown ones
// created. Each worker handles one asset end-to-end; no cross-asset
// coordination is needed.
func (s *Service) RefreshAll(ctx context.Context, src source.Source, workers int) (created, updated int, err error) {
	records, err := src.Fetch(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch metadata from %s: %w", src.Name(), err)
	}
	if workers < 1 {
		workers = 1
	}

	var createdN, updatedN atomic.Int64
	jobs := make(chan source.Record)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				s.mu.RLock()
				id, known := s.byTicker[rec.Ticker]
				s.mu.RUnlock()

				if known {
					if err := s.RefreshMetadata(id, model.Metadata{
						Category:          rec.Category,
						MarketCap:         rec.MarketCap,
						CirculatingSupply: rec.CirculatingSupply,
						TotalSupply:       rec.TotalSupply,
					}); err != nil {
						log.Error().Err(err).Str("ticker", rec.Ticker).Msg("metadata refresh")
					} else {
						updatedN.Add(1)
					}
					continue
				}
				if _, err := s.CreateAutomated(rec); err != nil {
					log.Error().Err(err).Str("ticker", rec.Ticker).Msg("asset creation")
				} else {
					createdN.Add(1)
				}
			}
		}()
	}

dispatch:
	for _, rec := range records {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- rec:
		}
	}
	close(jobs)
	wg.Wait()

	return int(createdN.Load()), int(updatedN.Load()), ctx.Err()
}

// Get returns a copy of one asset.
func (s *Service) Get(id string) (model.Asset, error) {
	a, err := s.lookup(id)
	if err != nil {
		return model.Asset{}, err
	}
	return *a, nil
}

// List returns copies of all assets ordered by name.
func (s *Service) List() []model.Asset {
	s.mu.RLock()
	out := make([]model.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, *a)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) lookup(id string) (*model.Asset, error) {
	s.mu.RLock()
	a, ok := s.assets[id]
	s.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

// swap publishes the updated asset record and persists it. Records are
// replaced wholesale, never mutated in place, so readers holding a copy
// never observe partial writes.
func (s *Service) swap(a *model.Asset) {
	s.mu.Lock()
	s.assets[a.ID] = a
	s.mu.Unlock()
	s.persist(a)
}

func (s *Service) persist(a *model.Asset) {
	if err := s.store.SaveAsset(a); err != nil {
		log.Error().Err(err).Str("asset", a.ID).Msg("persist asset")
	}
}

func ptr(v float64) *float64 { return &v }
