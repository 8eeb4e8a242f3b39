package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"OmegaScreen/internal/config"
	"OmegaScreen/internal/screener"
	"OmegaScreen/internal/store"
)

var (
	cfgPath string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "screener",
		Short:         "Crypto asset screener producing composite Omega Scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
				zerolog.SetGlobalLevel(level)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newAssetsCmd())
	root.AddCommand(newAddCmd())
	return root
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// openService opens the configured SQLite store and loads the screener
// service from it. The caller must Close the returned store.
func openService() (*screener.Service, *store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc, err := screener.New(st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, st, nil
}
