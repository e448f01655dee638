// Package services contains stateless domain services used while replaying
// walkthroughs.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	maxExpressionLength = 1000 // Character limit for readability
	maxASTNodes         = 100  // AST node limit prevents deeply nested expressions
)

// Outcome is what a step produced: the subject's state afterwards, the
// operation's return value and its error, if any.
type Outcome struct {
	Err    error
	Result interface{}
	State  map[string]interface{}
}

// StepVerdict is the evaluated status of a step.
type StepVerdict struct {
	Status       values.Status
	Message      string
	Rule         string
	Expectations []execution.ExpectationResult
}

// StepEvaluator judges step outcomes against expect_error and expect
// expressions. Compiled expressions are cached; it is safe for concurrent use.
type StepEvaluator struct {
	programCache map[string]*vm.Program
	cacheMu      sync.RWMutex
}

// NewStepEvaluator creates a new evaluator with an empty cache.
func NewStepEvaluator() *StepEvaluator {
	return &StepEvaluator{
		programCache: make(map[string]*vm.Program),
	}
}

// Evaluate determines the status of a step.
//
// Rules:
// - expectError set: the step must fail with exactly that rule
// - expectError empty: any error makes the step StatusError
// - every expect expression must be true, otherwise StatusFail
// - an expression that cannot compile, run or yield a bool is StatusError
func (s *StepEvaluator) Evaluate(_ context.Context, outcome Outcome, expectError string, expects []string) StepVerdict {
	verdict := StepVerdict{Status: values.StatusPass}

	rule, hasRule := domainerrors.RuleOf(outcome.Err)
	if hasRule {
		verdict.Rule = string(rule)
	}

	switch {
	case expectError != "" && outcome.Err == nil:
		verdict.Status = values.StatusFail
		verdict.Message = fmt.Sprintf("expected %s violation, operation succeeded", expectError)
	case expectError != "" && !hasRule:
		verdict.Status = values.StatusError
		verdict.Message = fmt.Sprintf("expected %s violation, got %v", expectError, outcome.Err)
	case expectError != "" && string(rule) != expectError:
		verdict.Status = values.StatusFail
		verdict.Message = fmt.Sprintf("expected %s violation, got %s: %v", expectError, rule, outcome.Err)
	case expectError == "" && outcome.Err != nil:
		verdict.Status = values.StatusError
		verdict.Message = outcome.Err.Error()
	}

	if len(expects) == 0 {
		return verdict
	}

	env := newExpressionEnv(outcome)
	verdict.Expectations = make([]execution.ExpectationResult, 0, len(expects))
	for _, expression := range expects {
		result, status := s.evaluateExpression(expression, env)
		verdict.Expectations = append(verdict.Expectations, result)
		verdict.Status = verdict.Status.Worst(status)
	}

	return verdict
}

// expressionEnv holds the variables visible to expect expressions.
// Expressions are compiled against its field types, so a cached program
// stays valid whatever concrete result a later step returns.
type expressionEnv struct {
	State  map[string]interface{} `expr:"state"`
	Result interface{}            `expr:"result"`
	Error  string                 `expr:"error"`
	Rule   string                 `expr:"rule"`
}

func newExpressionEnv(outcome Outcome) expressionEnv {
	env := expressionEnv{
		State:  outcome.State,
		Result: outcome.Result,
	}
	if env.State == nil {
		env.State = map[string]interface{}{}
	}
	if outcome.Err != nil {
		env.Error = outcome.Err.Error()
	}
	rule, _ := domainerrors.RuleOf(outcome.Err)
	env.Rule = string(rule)
	return env
}

func (s *StepEvaluator) evaluateExpression(expression string, env expressionEnv) (execution.ExpectationResult, values.Status) {
	result := execution.ExpectationResult{Expression: expression}

	if len(expression) > maxExpressionLength {
		result.Message = fmt.Sprintf("Expression too long (max %d chars): %d chars", maxExpressionLength, len(expression))
		return result, values.StatusError
	}

	program, err := s.getOrCompileExpression(expression)
	if err != nil {
		result.Message = fmt.Sprintf("Compilation failed: %v", err)
		return result, values.StatusError
	}

	output, err := expr.Run(program, env)
	if err != nil {
		result.Message = fmt.Sprintf("Evaluation failed: %v", err)
		return result, values.StatusError
	}

	passed, ok := output.(bool)
	if !ok {
		result.Message = fmt.Sprintf("Expression did not return boolean: %v", output)
		return result, values.StatusError
	}
	if !passed {
		result.Message = constructFailureMessage(expression, env)
		return result, values.StatusFail
	}

	result.Passed = true
	return result, values.StatusPass
}

// getOrCompileExpression retrieves a cached program or compiles and caches a new one.
func (s *StepEvaluator) getOrCompileExpression(expression string) (*vm.Program, error) {
	s.cacheMu.RLock()
	program, found := s.programCache[expression]
	s.cacheMu.RUnlock()

	if found {
		return program, nil
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	// Another goroutine may have compiled it while we waited for the lock
	if program, found := s.programCache[expression]; found {
		return program, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(expressionEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxASTNodes),
	)
	if err != nil {
		return nil, err
	}

	s.programCache[expression] = program
	return program, nil
}

// constructFailureMessage reports the actual value for simple comparisons
// such as "state.balance == 150".
func constructFailureMessage(expression string, env expressionEnv) string {

	for _, op := range []string{"==", "!=", ">=", "<=", ">", "<"} {
		parts := strings.SplitN(expression, op, 2)
		if len(parts) != 2 {
			continue
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		if field, ok := strings.CutPrefix(left, "state."); ok {
			if actual, found := env.State[field]; found {
				return fmt.Sprintf("Expected %s %s %s, got %v", left, op, right, actual)
			}
		}
		if left == "result" {
			return fmt.Sprintf("Expected %s %s %s, got %v", left, op, right, env.Result)
		}
	}

	return fmt.Sprintf("Expression evaluated to false: %s", expression)
}
