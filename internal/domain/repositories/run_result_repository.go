// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// RunResultRepository defines the interface for storing walkthrough run results.
type RunResultRepository interface {
	// Save stores a run result.
	Save(ctx context.Context, result *execution.RunResult) error

	// FindByID retrieves a run result by its unique ID.
	FindByID(ctx context.Context, id values.RunID) (*execution.RunResult, error)

	// FindByWalkthrough retrieves recent run results for a walkthrough, newest first.
	FindByWalkthrough(ctx context.Context, walkthroughName string, limit int) ([]*execution.RunResult, error)
}
