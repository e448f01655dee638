package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/encapsulab/encapsulab/internal/application/dto"
	"github.com/encapsulab/encapsulab/internal/application/subjects"
	"github.com/encapsulab/encapsulab/internal/config"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/encapsulab/encapsulab/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLoader map[string]*config.Walkthrough

func (m mapLoader) LoadWalkthrough(path string) (*config.Walkthrough, error) {
	w, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("no such walkthrough: %s", path)
	}
	return w, nil
}

func bankWalkthrough() *config.Walkthrough {
	return &config.Walkthrough{
		Version: "1.0.0",
		Name:    "bank-account",
		Steps: []config.Step{
			{ID: "open", Subject: "acct", Create: "bank_account",
				Args:   map[string]interface{}{"owner": "Ada", "balance": "100.00"},
				Expect: []string{"state.balance == 100", `state.owner == "Ada"`}},
			{ID: "deposit", Subject: "acct", Call: "deposit",
				Args:   map[string]interface{}{"amount": uint64(50)},
				Expect: []string{"result == 150", "state.balance == 150"}},
			{ID: "overdraw", Subject: "acct", Call: "withdraw",
				Args:        map[string]interface{}{"amount": uint64(500)},
				ExpectError: "sufficient_funds",
				Expect:      []string{"state.balance == 150", `rule == "sufficient_funds"`}},
		},
	}
}

func newTestService(loader mapLoader) (*WalkthroughService, *memory.RunResultRepository) {
	repo := memory.NewRunResultRepository()
	return NewWalkthroughService(loader, subjects.DefaultRegistry(), nil, repo, "1.2.0", nil), repo
}

func TestWalkthroughService_Run_Pass(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	result, err := svc.Run(ctx, bankWalkthrough())
	require.NoError(t, err)

	assert.Equal(t, values.StatusPass, result.Status)
	assert.Equal(t, 3, result.Summary.PassedSteps)
	assert.Equal(t, "1.2.0", result.ToolVersion)

	overdraw, ok := result.GetStepResultByID("overdraw")
	require.True(t, ok)
	assert.Equal(t, "sufficient_funds", overdraw.Rule)
	assert.Contains(t, overdraw.Error, "insufficient funds")
	assert.Equal(t, 150.0, overdraw.State["balance"])

	saved, err := repo.FindByID(ctx, result.GetID())
	require.NoError(t, err)
	assert.Same(t, result, saved)
}

func TestWalkthroughService_Run_Statuses(t *testing.T) {
	svc, _ := newTestService(nil)

	w := &config.Walkthrough{
		Version: "1.0.0",
		Name:    "mixed",
		Steps: []config.Step{
			{ID: "count", Subject: "c", Create: "counter"},
			{ID: "wrong", Subject: "c", Call: "increment", Expect: []string{"result == 2"}},
			{ID: "broken-car", Subject: "car", Create: "car",
				Args: map[string]interface{}{"make": "Benz", "model": "Motorwagen", "year": 1885}},
			{ID: "describe", Subject: "car", Call: "describe"},
		},
	}

	result, err := svc.Run(context.Background(), w)
	require.NoError(t, err)

	assert.Equal(t, values.StatusFail, result.Status)
	assert.Equal(t, 1, result.Summary.PassedSteps)
	assert.Equal(t, 1, result.Summary.FailedSteps)
	assert.Equal(t, 1, result.Summary.ErrorSteps)
	assert.Equal(t, 1, result.Summary.SkippedSteps)

	wrong, _ := result.GetStepResultByID("wrong")
	require.Len(t, wrong.Expectations, 1)
	assert.Equal(t, "Expected result == 2, got 1", wrong.Expectations[0].Message)

	broken, _ := result.GetStepResultByID("broken-car")
	assert.Equal(t, values.StatusError, broken.Status)
	assert.Equal(t, "min_year", broken.Rule)

	describe, _ := result.GetStepResultByID("describe")
	assert.Equal(t, "subject car was never created", describe.Message)
}

func TestWalkthroughService_Run_Cancelled(t *testing.T) {
	svc, _ := newTestService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Run(ctx, bankWalkthrough())
	require.NoError(t, err)

	assert.Equal(t, values.StatusSkipped, result.Status)
	assert.Equal(t, 3, result.Summary.SkippedSteps)
	assert.Equal(t, "open", result.Steps[0].ID)
}

func TestWalkthroughService_Run_Incompatible(t *testing.T) {
	svc, repo := newTestService(nil)

	w := bankWalkthrough()
	w.Requires = ">= 2.0.0"

	_, err := svc.Run(context.Background(), w)
	assert.ErrorContains(t, err, "needs >= 2.0.0, running 1.2.0")

	runs, err := repo.FindByWalkthrough(context.Background(), "bank-account", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWalkthroughService_RunAll(t *testing.T) {
	counter := &config.Walkthrough{
		Version: "1.0.0",
		Name:    "counter",
		Steps: []config.Step{
			{ID: "create", Subject: "c", Create: "counter"},
			{ID: "inc", Subject: "c", Call: "increment", Expect: []string{"state.count == 1"}},
		},
	}
	svc, _ := newTestService(mapLoader{
		"bank.yaml":    bankWalkthrough(),
		"counter.yaml": counter,
	})

	resp, err := svc.RunAll(context.Background(), dto.RunWalkthroughsRequest{
		Paths:     []string{"counter.yaml", "bank.yaml", "counter.yaml"},
		Execution: dto.ExecutionOptions{Concurrency: 2},
		Metadata:  dto.RequestMetadata{RequestID: "req-1"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "counter", resp.Results[0].WalkthroughName)
	assert.Equal(t, "bank-account", resp.Results[1].WalkthroughName)
	assert.Equal(t, "counter", resp.Results[2].WalkthroughName)
	assert.NotEqual(t, resp.Results[0].GetID(), resp.Results[2].GetID())
	assert.Equal(t, values.StatusPass, resp.Status())
	assert.Equal(t, "req-1", resp.Metadata.RequestID)
}

func TestWalkthroughService_RunAll_Errors(t *testing.T) {
	svc, _ := newTestService(mapLoader{"bank.yaml": bankWalkthrough()})

	_, err := svc.RunAll(context.Background(), dto.RunWalkthroughsRequest{})
	assert.ErrorContains(t, err, "at least one walkthrough file is required")

	_, err = svc.RunAll(context.Background(), dto.RunWalkthroughsRequest{
		Paths: []string{"bank.yaml", "missing.yaml"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load walkthrough missing.yaml")
	assert.False(t, errors.Is(err, context.Canceled))
}

func TestWalkthroughService_Run_UnknownOperation(t *testing.T) {
	svc, _ := newTestService(nil)

	w := &config.Walkthrough{
		Version: "1.0.0",
		Name:    "typo",
		Steps: []config.Step{
			{ID: "make", Subject: "c", Create: "counter"},
			{ID: "typo", Subject: "c", Call: "incremnet"},
			{ID: "ghost", Subject: "g", Create: "ghost"},
		},
	}

	result, err := svc.Run(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, values.StatusError, result.Status)

	typo, _ := result.GetStepResultByID("typo")
	assert.Equal(t, values.StatusError, typo.Status)
	assert.Contains(t, typo.Error, "step typo: cannot execute incremnet")
	assert.Contains(t, typo.Error, "unknown operation")

	ghost, _ := result.GetStepResultByID("ghost")
	assert.Equal(t, values.StatusError, ghost.Status)
	assert.Contains(t, ghost.Error, "unknown subject kind: ghost")
}
