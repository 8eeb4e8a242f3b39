package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"OmegaScreen/internal/scheduler"
	"OmegaScreen/internal/screener"
	"OmegaScreen/internal/source"
	"OmegaScreen/internal/store"
)

func newRunCmd() *cobra.Command {
	var refreshOnStart bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the screener daemon with scheduled metadata refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st store.Store
			if sq, err := store.NewSQLiteStore(cfg.Database.SQLitePath); err != nil {
				log.Warn().Err(err).Msg("init sqlite store failed, using noop")
				st = store.NewNoopStore()
			} else {
				st = sq
				defer sq.Close()
			}

			svc, err := screener.New(st)
			if err != nil {
				return err
			}

			src := source.NewWatchlistSource(cfg.Watchlist.Path)
			log.Info().Str("source", src.Name()).Str("path", cfg.Watchlist.Path).Msg("metadata source ready")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, svc, src, cfg.Refresh.Workers)
			if err := sched.Register(cfg.Refresh.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if refreshOnStart || os.Getenv("RUN_ON_START") == "true" {
				log.Info().Msg("refresh-on-start enabled, running metadata refresh now")
				go sched.RunRefreshNow()
			}

			log.Info().Msg("screener is running, press Ctrl+C to stop")
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			log.Info().Msg("shutdown signal received, stopping")
			return nil
		},
	}
	cmd.Flags().BoolVar(&refreshOnStart, "refresh-on-start", false, "run a metadata refresh immediately on start")
	return cmd
}
