// Package root contains the root command for the application.
package root

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MusikPolice/ofxcat-sub001/internal/categorizer"
	"github.com/MusikPolice/ofxcat-sub001/internal/config"
	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/store"
)

var (
	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRunE has run.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "ofxcat",
		Short: "Categorize bank statement transactions, learning as you go.",
		Long: `ofxcat ingests bank-statement transaction records, cleans them into
canonical transactions, and assigns each one to a spending category. Learned
description-to-category associations are persisted so recurring transactions
are categorized automatically over time.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefault(Log)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
	}
)

// OpenStore builds the categorization store on the configured backend and
// loads its persisted state. Durability failures (a backing that exists but
// cannot be opened) are returned as errors and treated as fatal by commands.
func OpenStore() (*categorizer.CategoryStore, error) {
	adapter, err := openAdapter()
	if err != nil {
		return nil, err
	}

	s := categorizer.NewCategoryStore(adapter, Log,
		categorizer.WithDescriptionThreshold(Cfg.Matching.DescriptionThreshold),
		categorizer.WithTokenOverlapThreshold(Cfg.Matching.TokenOverlapThreshold),
	)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func openAdapter() (categorizer.Adapter, error) {
	switch Cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteAdapter(filepath.Join(Cfg.Data.Directory, "ofxcat.db"), Log)
	case config.BackendFile:
		return store.NewFileAdapter(filepath.Join(Cfg.Data.Directory, "categories.yaml"), Log)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", Cfg.Storage.Backend)
	}
}
