// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/repositories"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/google/uuid"
)

// Ensure interface compliance
var _ repositories.RunResultRepository = (*RunResultRepository)(nil)

// RunResultRepository keeps run results for the lifetime of the process.
type RunResultRepository struct {
	results map[uuid.UUID]*execution.RunResult
	mu      sync.RWMutex
}

// NewRunResultRepository creates a new in-memory repository.
func NewRunResultRepository() *RunResultRepository {
	return &RunResultRepository{
		results: make(map[uuid.UUID]*execution.RunResult),
	}
}

// Save stores a run result. Callers should not modify the result after saving.
func (r *RunResultRepository) Save(_ context.Context, result *execution.RunResult) error {
	if result == nil {
		return fmt.Errorf("cannot save nil run result")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results[result.GetID().UUID()] = result
	return nil
}

// FindByID retrieves a run result by its unique ID.
func (r *RunResultRepository) FindByID(_ context.Context, id values.RunID) (*execution.RunResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("run result not found: %s", id)
	}
	return result, nil
}

// FindByWalkthrough retrieves recent run results for a walkthrough, newest first.
// A limit of zero or less returns every match.
func (r *RunResultRepository) FindByWalkthrough(_ context.Context, walkthroughName string, limit int) ([]*execution.RunResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*execution.RunResult
	for _, res := range r.results {
		if res.WalkthroughName == walkthroughName {
			matches = append(matches, res)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartTime.After(matches[j].StartTime)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
