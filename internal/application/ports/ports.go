// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"io"

	"github.com/encapsulab/encapsulab/internal/application/subjects"
	"github.com/encapsulab/encapsulab/internal/config"
	"github.com/encapsulab/encapsulab/internal/domain/execution"
)

// WalkthroughLoader loads walkthroughs from storage.
type WalkthroughLoader interface {
	LoadWalkthrough(path string) (*config.Walkthrough, error)
}

// SubjectFactory constructs example entities by kind.
type SubjectFactory interface {
	Create(kind string, args subjects.Args) (subjects.Subject, error)
}

// OutputFormatter formats run results.
type OutputFormatter interface {
	Format(results []*execution.RunResult) error
}

// FormatterOptions tunes formatter output.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatterFactory creates formatters by format name.
type OutputFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
