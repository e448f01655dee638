package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats run results as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes each run result as a table, followed by a totals line when
// there is more than one run.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(results []*execution.RunResult) error {
	for _, result := range results {
		f.formatRun(result)
	}

	if len(results) > 1 {
		passed := 0
		for _, result := range results {
			if result.Status.IsSuccess() {
				passed++
			}
		}
		fmt.Fprintf(f.writer, "Walkthroughs: %d total, %d passed\n", len(results), passed)
	}

	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatRun(result *execution.RunResult) {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Walkthrough: %s (v%s)\n", f.colorize(result.WalkthroughName, colorBold), result.WalkthroughVersion)
	fmt.Fprintf(f.writer, "Run: %s\n", result.GetID())
	fmt.Fprintf(f.writer, "Executed: %s\n", result.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", result.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(result.Steps) == 0 {
		fmt.Fprintln(f.writer, "No steps executed.")
		return
	}

	fmt.Fprintln(f.writer, f.colorize("Steps:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	for _, step := range result.Steps {
		f.formatStep(step)
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintln(f.writer)

	f.formatSummary(result.Summary)
}

// formatStep formats a single step.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatStep(step execution.StepResult) {
	statusSymbol, statusColor := f.getStatusInfo(step.Status)
	coloredSymbol := f.colorize(statusSymbol, statusColor)
	coloredID := f.colorize(step.ID, statusColor)
	operation := f.colorize(step.Subject+"."+step.Operation, colorCyan)

	fmt.Fprintf(f.writer, "%s %s: %s\n", coloredSymbol, coloredID, operation)

	statusText := f.colorize(strings.ToUpper(string(step.Status)), statusColor)
	fmt.Fprintf(f.writer, "  Status: %s\n", statusText)
	if step.Message != "" {
		fmt.Fprintf(f.writer, "  Message: %s\n", step.Message)
	}

	if step.Error != "" {
		label := "Error"
		if step.Rule != "" {
			label = fmt.Sprintf("Error [%s]", step.Rule)
		}
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize(label, colorRed), step.Error)
	}

	if step.Result != nil {
		fmt.Fprintf(f.writer, "  Result: %s\n", f.formatValue(step.Result))
	}

	f.formatFailedExpectations(step)
	f.formatState(step.State)

	fmt.Fprintf(f.writer, "  Duration: %s\n", step.Duration.Round(time.Microsecond))
	fmt.Fprintln(f.writer)
}

// formatFailedExpectations formats the failed expectations section.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatFailedExpectations(step execution.StepResult) {
	var failed []execution.ExpectationResult
	for _, exp := range step.Expectations {
		if !exp.Passed {
			failed = append(failed, exp)
		}
	}

	if len(failed) == 0 {
		return
	}

	fmt.Fprintf(f.writer, "  %s:\n", f.colorize("Failed Expectations", colorRed))
	for _, exp := range failed {
		fmt.Fprintf(f.writer, "    - %s\n", exp.Expression)
		if exp.Message != "" {
			fmt.Fprintf(f.writer, "      %s\n", f.colorize(exp.Message, colorYellow))
		}
	}
}

// formatState formats the subject's state in key order.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatState(state map[string]interface{}) {
	if len(state) == 0 {
		return
	}

	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(f.writer, "  State:")
	for _, key := range keys {
		fmt.Fprintf(f.writer, "    - %s: %s\n", f.colorize(key, colorBlue), f.formatValue(state[key]))
	}
}

// formatValue formats a value for display
func (f *TableFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = f.formatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%s", k, f.formatValue(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary execution.RunSummary) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	fmt.Fprintf(f.writer, "Steps:        %d total\n", summary.TotalSteps)
	fmt.Fprintf(f.writer, "  %s Passed:   %d\n", f.colorize("✓", colorGreen), summary.PassedSteps)
	fmt.Fprintf(f.writer, "  %s Failed:   %d\n", f.colorize("✗", colorRed), summary.FailedSteps)
	fmt.Fprintf(f.writer, "  %s Errors:   %d\n", f.colorize("⚠", colorYellow), summary.ErrorSteps)
	fmt.Fprintf(f.writer, "  %s Skipped:  %d\n", f.colorize("⊘", colorGray), summary.SkippedSteps)

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintln(f.writer)
}

// getStatusInfo returns a symbol and color for the given status.
func (f *TableFormatter) getStatusInfo(status values.Status) (string, string) {
	switch status {
	case values.StatusPass:
		return "✓", colorGreen
	case values.StatusFail:
		return "✗", colorRed
	case values.StatusError:
		return "⚠", colorYellow
	case values.StatusSkipped:
		return "⊘", colorGray
	default:
		return "?", colorReset
	}
}
