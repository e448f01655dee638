package main

import (
	"fmt"
	"io"
	"os"

	"github.com/encapsulab/encapsulab/internal/application/dto"
	"github.com/encapsulab/encapsulab/internal/application/ports"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runOpts = DefaultCommonOptions()

// runCmd replays walkthrough files.
var runCmd = &cobra.Command{
	Use:   "run <walkthrough.yaml>...",
	Short: "Replay walkthrough files",
	Long: `Load each walkthrough, validate it, and replay its steps against fresh
example objects. Every step reports the object's state afterwards, the
operation's result, and any invariant violation it raised.

Files run concurrently (see --concurrency); steps within a file run in order.
The command exits non-zero when any step fails or errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		return runWalkthroughs(cc, cmd, args, &runOpts)
	}),
}

func init() {
	rootCmd.AddCommand(runCmd)
	runOpts.RegisterFlags(runCmd)
}

func runWalkthroughs(cc *CommandContext, cmd *cobra.Command, paths []string, opts *CommonOptions) error {
	opts.ApplyConfig(cmd, cc.Container.SystemConfig())

	formatters := cc.Container.Formatters()
	if err := opts.ValidateFlags(formatters.SupportedFormats()); err != nil {
		return err
	}

	ctx, cancel := opts.ApplyToContext(cc.Context)
	defer cancel()

	resp, err := cc.Container.WalkthroughService().RunAll(ctx, dto.RunWalkthroughsRequest{
		Paths:     paths,
		Execution: dto.ExecutionOptions{Concurrency: opts.Concurrency},
		Metadata:  dto.RequestMetadata{RequestID: uuid.NewString()},
	})
	if err != nil {
		return err
	}

	status := resp.Status()
	cc.Logger.Debug("run finished", "request_id", resp.Metadata.RequestID, "status", status, "duration", resp.Metadata.Duration)

	if !opts.Quiet || !status.IsSuccess() {
		if err := writeReport(cmd, opts, formatters, resp); err != nil {
			return err
		}
	}

	if status.IsFailure() {
		return fmt.Errorf("walkthroughs finished with status %s", status)
	}
	return nil
}

func writeReport(cmd *cobra.Command, opts *CommonOptions, formatters ports.OutputFormatterFactory, resp *dto.RunWalkthroughsResponse) error {
	var w io.Writer = cmd.OutOrStdout()
	color := !opts.NoColor

	if opts.OutputPath != "" {
		//nolint:gosec // G304: output path is chosen by the user
		file, err := os.Create(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		w = file
		color = false
	}

	formatter, err := formatters.Create(opts.Format, w, ports.FormatterOptions{Indent: true, Color: color})
	if err != nil {
		return err
	}
	return formatter.Format(resp.Results)
}
