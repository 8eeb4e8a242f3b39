package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"OmegaScreen/internal/screener"
	"OmegaScreen/internal/source"
)

// Scheduler runs the periodic metadata refresh over all tracked assets.
type Scheduler struct {
	Cron    *cron.Cron
	Service *screener.Service
	Source  source.Source
	Workers int
	Ctx     context.Context
}

// NewScheduler creates a Scheduler with a seconds-granularity cron.
func NewScheduler(ctx context.Context, svc *screener.Service, src source.Source, workers int) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Source:  src,
		Workers: workers,
		Ctx:     ctx,
	}
}

// Register adds the refresh task under the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger or
// run-on-start).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Info().Str("source", s.Source.Name()).Msg("running metadata refresh")
	created, updated, err := s.Service.RefreshAll(s.Ctx, s.Source, s.Workers)
	if err != nil {
		log.Error().Err(err).Msg("metadata refresh")
		return
	}
	log.Info().Int("created", created).Int("updated", updated).Msg("metadata refresh complete")
}
