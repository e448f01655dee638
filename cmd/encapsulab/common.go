package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/encapsulab/encapsulab/internal/infrastructure/system"
	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared by commands that produce reports.
type CommonOptions struct {
	// Output
	Format     string
	OutputPath string

	// Execution
	Timeout     time.Duration
	Concurrency int

	// Flags (bools grouped for alignment)
	NoColor bool
	Quiet   bool
}

// DefaultCommonOptions returns defaults matching system.DefaultConfig.
func DefaultCommonOptions() CommonOptions {
	cfg := system.DefaultConfig()
	return CommonOptions{
		Format:      cfg.Format,
		Timeout:     cfg.Timeout,
		Concurrency: cfg.Concurrency,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	// Execution
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire execution (0 to disable)")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", opts.Concurrency,
		"Walkthrough files run at once (0 for no limit)")

	// Output
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable coloured table output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// ApplyConfig fills every option the user did not set on the command line
// from the loaded configuration.
func (opts *CommonOptions) ApplyConfig(cmd *cobra.Command, cfg *system.Config) {
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("format") {
		opts.Format = cfg.Format
	}
	if !cmd.Flags().Changed("timeout") {
		opts.Timeout = cfg.Timeout
	}
	if !cmd.Flags().Changed("concurrency") {
		opts.Concurrency = cfg.Concurrency
	}
	if !cmd.Flags().Changed("no-color") {
		opts.NoColor = !cfg.Color
	}
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options against the supported formats.
func (opts *CommonOptions) ValidateFlags(formats []string) error {
	if verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if opts.Concurrency < 0 {
		return fmt.Errorf("--concurrency must be zero or positive")
	}
	if !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, formats)
	}
	return nil
}
