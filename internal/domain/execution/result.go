// Package execution provides domain models for walkthrough run results.
package execution

import (
	"sort"
	"sync"
	"time"

	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// RunResult represents the complete result of executing one walkthrough.
type RunResult struct {
	StartTime          time.Time     `json:"start_time" yaml:"start_time"`
	EndTime            time.Time     `json:"end_time" yaml:"end_time"`
	ToolVersion        string        `json:"tool_version,omitempty" yaml:"tool_version,omitempty"`
	WalkthroughName    string        `json:"walkthrough_name" yaml:"walkthrough_name"`
	WalkthroughVersion string        `json:"walkthrough_version" yaml:"walkthrough_version"`
	Status             values.Status `json:"status" yaml:"status"`
	Steps              []StepResult  `json:"steps" yaml:"steps"`
	Summary            RunSummary    `json:"summary" yaml:"summary"`
	Duration           time.Duration `json:"duration" yaml:"duration"`
	mu                 sync.Mutex
	RunID              values.RunID `json:"run_id" yaml:"run_id"`
}

// StepResult represents the outcome of a single walkthrough step.
type StepResult struct {
	ID           string                 `json:"id" yaml:"id"`
	Subject      string                 `json:"subject" yaml:"subject"`
	Operation    string                 `json:"operation" yaml:"operation"`
	Status       values.Status          `json:"status" yaml:"status"`
	Message      string                 `json:"message,omitempty" yaml:"message,omitempty"`
	Error        string                 `json:"error,omitempty" yaml:"error,omitempty"`
	Rule         string                 `json:"rule,omitempty" yaml:"rule,omitempty"`
	Result       interface{}            `json:"result,omitempty" yaml:"result,omitempty"`
	State        map[string]interface{} `json:"state,omitempty" yaml:"state,omitempty"`
	Expectations []ExpectationResult    `json:"expectations,omitempty" yaml:"expectations,omitempty"`
	Index        int                    `json:"index" yaml:"index"`
	Duration     time.Duration          `json:"duration" yaml:"duration"`
}

// ExpectationResult represents the result of evaluating a single expectation expression.
type ExpectationResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	Passed     bool   `json:"passed" yaml:"passed"`
}

// RunSummary provides aggregate statistics about the run.
type RunSummary struct {
	TotalSteps   int `json:"total_steps" yaml:"total_steps"`
	PassedSteps  int `json:"passed_steps" yaml:"passed_steps"`
	FailedSteps  int `json:"failed_steps" yaml:"failed_steps"`
	ErrorSteps   int `json:"error_steps" yaml:"error_steps"`
	SkippedSteps int `json:"skipped_steps" yaml:"skipped_steps"`
}

// NewRunResult creates a new run result.
func NewRunResult(walkthroughName, walkthroughVersion string) *RunResult {
	return NewRunResultWithID(values.NewRunID(), walkthroughName, walkthroughVersion)
}

// NewRunResultWithID creates a new run result with a specific ID.
func NewRunResultWithID(id values.RunID, walkthroughName, walkthroughVersion string) *RunResult {
	return &RunResult{
		RunID:              id,
		WalkthroughName:    walkthroughName,
		WalkthroughVersion: walkthroughVersion,
		StartTime:          time.Now(),
		Steps:              make([]StepResult, 0),
	}
}

// GetID returns the run ID.
func (r *RunResult) GetID() values.RunID {
	return r.RunID
}

// AddStepResult adds a step result. Safe for concurrent calls.
func (r *RunResult) AddStepResult(sr StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Steps = append(r.Steps, sr)
}

// GetStepResultByID returns a copy of the step result with the given ID.
func (r *RunResult) GetStepResultByID(id string) (StepResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, step := range r.Steps {
		if step.ID == id {
			return step, true
		}
	}
	return StepResult{}, false
}

// Finalize completes the run result and calculates the summary.
// Steps are sorted by their definition order for deterministic output.
func (r *RunResult) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)

	sort.Slice(r.Steps, func(i, j int) bool {
		return r.Steps[i].Index < r.Steps[j].Index
	})

	r.calculateSummary()
}

// calculateSummary computes summary statistics and the overall status.
func (r *RunResult) calculateSummary() {
	r.Summary = RunSummary{
		TotalSteps: len(r.Steps),
	}
	r.Status = values.StatusPass

	for _, step := range r.Steps {
		switch step.Status {
		case values.StatusPass:
			r.Summary.PassedSteps++
		case values.StatusFail:
			r.Summary.FailedSteps++
		case values.StatusError:
			r.Summary.ErrorSteps++
		case values.StatusSkipped:
			r.Summary.SkippedSteps++
		}
		r.Status = r.Status.Worst(step.Status)
	}
}
