package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanatui/internal/app"
	"github.com/abhisek/kanatui/internal/config"
	"github.com/abhisek/kanatui/internal/logger"
	"github.com/abhisek/kanatui/internal/session"
)

// runApp sets up logging, loads settings, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	level, _ := cmd.Flags().GetString("log-level")
	log, closer, err := logger.Setup(logger.Options{
		Path:  resolveLogPath(cmd),
		Level: level,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	store := config.NewFileStore(resolveConfigPath(cmd))
	cfg, err := config.Open(store)
	if err != nil {
		log.Error("settings load failed", "path", store.Path(), "error", err)
		return err
	}
	log.Info("settings loaded", "path", store.Path(), "writing_system", cfg.Settings().WritingSystem)

	opts := app.Options{
		Config: cfg,
		Logger: log,
	}
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		opts.Rand = session.NewSeededRand(seed)
		log.Debug("deterministic shuffles", "seed", seed)
	}

	return app.Run(opts)
}
