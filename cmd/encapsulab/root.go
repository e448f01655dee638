package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encapsulab/encapsulab/internal/infrastructure/system"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// systemConfig is loaded once before any subcommand runs
	systemConfig *system.Config
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "encapsulab",
	Short: "Encapsulation examples you can run",
	Long: `encapsulab replays walkthroughs: YAML scripts that construct example
objects (counters, bank accounts, cars, employees, immutable people) and call
their operations, showing how each object guards its invariants.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := system.NewConfigLoader().Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		systemConfig = cfg
		setupLogging(cfg.Level())
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.encapsulab.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func setupLogging(level slog.Level) {
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
