package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/encapsulab/encapsulab/internal/infrastructure/container"
	"github.com/encapsulab/encapsulab/internal/version"
	"github.com/spf13/cobra"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfig:     systemConfig,
			SystemConfigPath: cfgFile,
			ToolVersion:      toolVersion(),
			Logger:           logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
		}, cmd, args)
	}
}

// toolVersion is the version walkthrough requires constraints are checked
// against. Development builds report "dev", which satisfies every constraint.
func toolVersion() string {
	info := version.Get()
	if v := info.Semantic(); v != nil {
		return v.String()
	}
	return info.Version
}
