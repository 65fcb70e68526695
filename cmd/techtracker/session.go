package main

import (
	"context"
	"fmt"

	"github.com/jonathan/techtracker/internal/config"
	"github.com/jonathan/techtracker/internal/logging"
	"github.com/jonathan/techtracker/internal/observability"
	"github.com/jonathan/techtracker/internal/store"
	"github.com/jonathan/techtracker/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openSession resolves configuration, connects the store and loads the
// collection. The returned func closes the store and flushes the logger.
func openSession(ctx context.Context) (*tracker.Session, func(), error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	st, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	logger.Debug("Opened store", zap.String("driver", cfg.StoreDriver))

	session, err := tracker.Open(ctx, st, logger, tracker.Options{
		Seed:        cfg.ShouldSeed(),
		RoadmapName: cfg.RoadmapName,
	})
	if err != nil {
		_ = st.Close()
		_ = logger.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		if err := st.Close(); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return session, cleanup, nil
}

// printerFor returns a Printer on the command's output using the stored theme
func printerFor(cmd *cobra.Command, session *tracker.Session) (*observability.Printer, error) {
	dark, err := session.DarkMode(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to read display preference: %w", err)
	}
	return observability.NewPrinter(cmd.OutOrStdout()).WithDarkMode(dark), nil
}
