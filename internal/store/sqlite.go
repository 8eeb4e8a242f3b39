package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"OmegaScreen/internal/model"
)

// SQLiteStore persists assets and analysis history to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite store opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS assets (
			id                  TEXT PRIMARY KEY,
			name                TEXT NOT NULL,
			ticker              TEXT,
			category            TEXT,
			source              TEXT NOT NULL,
			market_cap          REAL,
			circulating_supply  REAL,
			total_supply        REAL,
			sector_strength     REAL,
			value_proposition   REAL,
			backing_team        REAL,
			valuation_potential REAL,
			token_utility       REAL,
			supply_risk         REAL,
			data_signal         REAL,
			narrative_score     REAL NOT NULL,
			tokenomics_score    REAL NOT NULL,
			data_score          REAL,
			omega_score         REAL,
			state               TEXT NOT NULL,
			created_at          INTEGER NOT NULL,
			updated_at          INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_ticker ON assets(ticker)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_state ON assets(state)`,

		`CREATE TABLE IF NOT EXISTS analyses (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			asset_id    TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			data_score  REAL,
			label       TEXT,
			price_slope REAL,
			price_r     REAL,
			cvd_slope   REAL,
			cvd_r       REAL,
			periods     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_asset ON analyses(asset_id, timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveAsset inserts or fully replaces the asset row.
func (s *SQLiteStore) SaveAsset(a *model.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO assets
		(id, name, ticker, category, source,
		 market_cap, circulating_supply, total_supply,
		 sector_strength, value_proposition, backing_team,
		 valuation_potential, token_utility, supply_risk, data_signal,
		 narrative_score, tokenomics_score, data_score, omega_score,
		 state, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
		 name=excluded.name, ticker=excluded.ticker, category=excluded.category,
		 source=excluded.source, market_cap=excluded.market_cap,
		 circulating_supply=excluded.circulating_supply, total_supply=excluded.total_supply,
		 sector_strength=excluded.sector_strength, value_proposition=excluded.value_proposition,
		 backing_team=excluded.backing_team, valuation_potential=excluded.valuation_potential,
		 token_utility=excluded.token_utility, supply_risk=excluded.supply_risk,
		 data_signal=excluded.data_signal, narrative_score=excluded.narrative_score,
		 tokenomics_score=excluded.tokenomics_score, data_score=excluded.data_score,
		 omega_score=excluded.omega_score, state=excluded.state,
		 updated_at=excluded.updated_at`,
		a.ID, a.Name, a.Ticker, a.Category, string(a.Source),
		nullable(a.MarketCap), nullable(a.CirculatingSupply), nullable(a.TotalSupply),
		nullable(a.SectorStrength), nullable(a.ValueProposition), nullable(a.BackingTeam),
		nullable(a.ValuationPotential), nullable(a.TokenUtility), nullable(a.SupplyRisk),
		nullable(a.DataSignal),
		a.NarrativeScore, a.TokenomicsScore, nullable(a.DataScore), nullable(a.OmegaScore),
		string(a.State), a.CreatedAt.Unix(), a.UpdatedAt.Unix(),
	)
	return err
}

const assetColumns = `id, name, ticker, category, source,
	market_cap, circulating_supply, total_supply,
	sector_strength, value_proposition, backing_team,
	valuation_potential, token_utility, supply_risk, data_signal,
	narrative_score, tokenomics_score, data_score, omega_score,
	state, created_at, updated_at`

// GetAsset loads one asset by id, or ErrNotFound.
func (s *SQLiteStore) GetAsset(id string) (*model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)
	a, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return a, err
}

// ListAssets loads all assets ordered by name.
func (s *SQLiteStore) ListAssets() ([]*model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT ` + assetColumns + ` FROM assets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*model.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// RecordAnalysis appends one analysis run to the audit table.
func (s *SQLiteStore) RecordAnalysis(rec *AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO analyses
		(asset_id, timestamp, data_score, label, price_slope, price_r, cvd_slope, cvd_r, periods)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.AssetID, time.Now().Unix(), rec.DataScore, rec.Label,
		rec.PriceSlope, rec.PriceR, rec.CVDSlope, rec.CVDR, rec.Periods,
	)
	return err
}

func (s *SQLiteStore) Close() error {
	log.Info().Msg("closing sqlite store")
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(row scanner) (*model.Asset, error) {
	var (
		a                  model.Asset
		source, state      string
		marketCap          sql.NullFloat64
		circulating        sql.NullFloat64
		total              sql.NullFloat64
		sectorStrength     sql.NullFloat64
		valueProposition   sql.NullFloat64
		backingTeam        sql.NullFloat64
		valuationPotential sql.NullFloat64
		tokenUtility       sql.NullFloat64
		supplyRisk         sql.NullFloat64
		dataSignal         sql.NullFloat64
		dataScore          sql.NullFloat64
		omegaScore         sql.NullFloat64
		createdAt          int64
		updatedAt          int64
	)
	err := row.Scan(&a.ID, &a.Name, &a.Ticker, &a.Category, &source,
		&marketCap, &circulating, &total,
		&sectorStrength, &valueProposition, &backingTeam,
		&valuationPotential, &tokenUtility, &supplyRisk, &dataSignal,
		&a.NarrativeScore, &a.TokenomicsScore, &dataScore, &omegaScore,
		&state, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	a.Source = model.Source(source)
	a.State = model.AvailabilityState(state)
	a.MarketCap = fromNullable(marketCap)
	a.CirculatingSupply = fromNullable(circulating)
	a.TotalSupply = fromNullable(total)
	a.SectorStrength = fromNullable(sectorStrength)
	a.ValueProposition = fromNullable(valueProposition)
	a.BackingTeam = fromNullable(backingTeam)
	a.ValuationPotential = fromNullable(valuationPotential)
	a.TokenUtility = fromNullable(tokenUtility)
	a.SupplyRisk = fromNullable(supplyRisk)
	a.DataSignal = fromNullable(dataSignal)
	a.DataScore = fromNullable(dataScore)
	a.OmegaScore = fromNullable(omegaScore)
	a.CreatedAt = time.Unix(createdAt, 0)
	a.UpdatedAt = time.Unix(updatedAt, 0)
	return &a, nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
