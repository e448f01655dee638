// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/encapsulab/encapsulab/internal/application/dto"
	apperrors "github.com/encapsulab/encapsulab/internal/application/errors"
	"github.com/encapsulab/encapsulab/internal/application/ports"
	"github.com/encapsulab/encapsulab/internal/application/subjects"
	"github.com/encapsulab/encapsulab/internal/config"
	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/repositories"
	domainservices "github.com/encapsulab/encapsulab/internal/domain/services"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// WalkthroughService replays walkthroughs against live example entities.
type WalkthroughService struct {
	loader      ports.WalkthroughLoader
	subjects    ports.SubjectFactory
	evaluator   *domainservices.StepEvaluator
	repository  repositories.RunResultRepository
	logger      *slog.Logger
	toolVersion string
}

// NewWalkthroughService creates a new walkthrough service.
func NewWalkthroughService(
	loader ports.WalkthroughLoader,
	subjectFactory ports.SubjectFactory,
	evaluator *domainservices.StepEvaluator,
	repository repositories.RunResultRepository,
	toolVersion string,
	logger *slog.Logger,
) *WalkthroughService {
	if logger == nil {
		logger = slog.Default()
	}
	if evaluator == nil {
		evaluator = domainservices.NewStepEvaluator()
	}

	return &WalkthroughService{
		loader:      loader,
		subjects:    subjectFactory,
		evaluator:   evaluator,
		repository:  repository,
		logger:      logger,
		toolVersion: toolVersion,
	}
}

// Run executes every step of w in order against a fresh session.
// Cancellation is checked between steps; steps not reached are recorded as
// skipped and the partial result is still returned.
func (s *WalkthroughService) Run(ctx context.Context, w *config.Walkthrough) (*execution.RunResult, error) {
	if err := config.CheckCompatibility(w, s.toolVersion); err != nil {
		return nil, err
	}

	result := execution.NewRunResult(w.Name, w.Version)
	result.ToolVersion = s.toolVersion
	session := make(map[string]subjects.Subject)

	s.logger.Debug("running walkthrough", "name", w.Name, "run_id", result.GetID().String(), "steps", len(w.Steps))

	for i, step := range w.Steps {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("walkthrough interrupted", "name", w.Name, "step", step.ID, "error", err)
			for j := i; j < len(w.Steps); j++ {
				result.AddStepResult(skippedStep(j, w.Steps[j], "not run: "+err.Error()))
			}
			break
		}
		result.AddStepResult(s.runStep(ctx, i, step, session))
	}

	result.Finalize()

	if s.repository != nil {
		if err := s.repository.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to save run result: %w", err)
		}
	}

	s.logger.Info("walkthrough complete",
		"name", w.Name,
		"status", result.Status,
		"passed", result.Summary.PassedSteps,
		"total", result.Summary.TotalSteps,
		"duration", result.Duration.Round(time.Millisecond))

	return result, nil
}

// RunFile loads and runs a single walkthrough file.
func (s *WalkthroughService) RunFile(ctx context.Context, path string) (*execution.RunResult, error) {
	s.logger.Debug("loading walkthrough", "path", path)

	w, err := s.loader.LoadWalkthrough(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load walkthrough %s: %w", path, err)
	}
	return s.Run(ctx, w)
}

// RunAll loads and runs several walkthrough files concurrently, bounded by
// req.Execution.Concurrency. Results keep the order of req.Paths. The first
// load or compatibility failure cancels the remaining runs.
func (s *WalkthroughService) RunAll(ctx context.Context, req dto.RunWalkthroughsRequest) (*dto.RunWalkthroughsResponse, error) {
	startTime := time.Now()

	if len(req.Paths) == 0 {
		return nil, apperrors.NewValidationError("paths", "at least one walkthrough file is required")
	}

	results := make([]*execution.RunResult, len(req.Paths))

	g, gctx := errgroup.WithContext(ctx)
	if req.Execution.Concurrency > 0 {
		g.SetLimit(req.Execution.Concurrency)
	}

	for i, path := range req.Paths {
		g.Go(func() error {
			res, err := s.RunFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.RunWalkthroughsResponse{
		Results: results,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

// runStep performs one step and judges its outcome.
func (s *WalkthroughService) runStep(
	ctx context.Context,
	index int,
	step config.Step,
	session map[string]subjects.Subject,
) execution.StepResult {
	start := time.Now()
	args := subjects.Args(step.Args)

	var outcome domainservices.Outcome
	if step.IsCreate() {
		subject, err := s.subjects.Create(step.Create, args)
		outcome.Err = err
		if err == nil {
			session[step.Subject] = subject
			outcome.State = subject.Snapshot()
		}
	} else {
		subject, ok := session[step.Subject]
		if !ok {
			return skippedStep(index, step, fmt.Sprintf("subject %s was never created", step.Subject))
		}
		outcome.Result, outcome.Err = subject.Invoke(step.Call, args)
		outcome.State = subject.Snapshot()
	}

	if errors.Is(outcome.Err, subjects.ErrUnknownKind) || errors.Is(outcome.Err, subjects.ErrUnknownOperation) {
		outcome.Err = apperrors.NewStepError(step.ID, "cannot execute "+step.Operation(), outcome.Err)
	}

	verdict := s.evaluator.Evaluate(ctx, outcome, step.ExpectError, step.Expect)

	sr := execution.StepResult{
		ID:           step.ID,
		Subject:      step.Subject,
		Operation:    step.Operation(),
		Status:       verdict.Status,
		Message:      verdict.Message,
		Rule:         verdict.Rule,
		Result:       outcome.Result,
		State:        outcome.State,
		Expectations: verdict.Expectations,
		Index:        index,
		Duration:     time.Since(start),
	}
	if outcome.Err != nil {
		sr.Error = outcome.Err.Error()
	}

	s.logger.Debug("step complete", "id", step.ID, "operation", sr.Operation, "status", sr.Status)
	return sr
}

func skippedStep(index int, step config.Step, reason string) execution.StepResult {
	return execution.StepResult{
		ID:        step.ID,
		Subject:   step.Subject,
		Operation: step.Operation(),
		Status:    values.StatusSkipped,
		Message:   reason,
		Index:     index,
	}
}
