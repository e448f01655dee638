package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestResult creates a sample run result for testing.
func createTestResult() *execution.RunResult {
	result := execution.NewRunResult("bank-account", "1.0.0")

	result.AddStepResult(execution.StepResult{
		ID:        "open",
		Subject:   "acct",
		Operation: "bank_account",
		Status:    values.StatusPass,
		State:     map[string]interface{}{"owner": "Ada", "balance": 100.0},
		Index:     0,
		Duration:  time.Millisecond,
	})
	result.AddStepResult(execution.StepResult{
		ID:        "overdraw",
		Subject:   "acct",
		Operation: "withdraw",
		Status:    values.StatusFail,
		Error:     "amount: insufficient funds",
		Rule:      "sufficient_funds",
		State:     map[string]interface{}{"owner": "Ada", "balance": 100.0},
		Expectations: []execution.ExpectationResult{
			{Expression: "state.balance == 50", Message: "Expected state.balance == 50, got 100"},
		},
		Index: 1,
	})
	result.AddStepResult(execution.StepResult{
		ID:        "history",
		Subject:   "acct",
		Operation: "statement",
		Status:    values.StatusSkipped,
		Message:   "subject acct was never created",
		Result:    []interface{}{"a", "b"},
		Index:     2,
	})

	result.Finalize()
	return result
}

func TestTableFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewTableFormatter(buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format([]*execution.RunResult{createTestResult()}))
	out := buf.String()

	assert.Contains(t, out, "Walkthrough: bank-account (v1.0.0)")
	assert.Contains(t, out, "✓ open: acct.bank_account")
	assert.Contains(t, out, "✗ overdraw: acct.withdraw")
	assert.Contains(t, out, "Error [sufficient_funds]: amount: insufficient funds")
	assert.Contains(t, out, "Failed Expectations:")
	assert.Contains(t, out, "Expected state.balance == 50, got 100")
	assert.Contains(t, out, "    - balance: 100\n    - owner: Ada")
	assert.Contains(t, out, "Result: [a, b]")
	assert.Contains(t, out, "Steps:        3 total")
	assert.NotContains(t, out, "\033[")
	assert.NotContains(t, out, "Walkthroughs:")
}

func TestTableFormatter_MultipleRunsWithColor(t *testing.T) {
	buf := &bytes.Buffer{}
	passing := execution.NewRunResult("counter", "1.0.0")
	passing.Finalize()

	require.NoError(t, NewTableFormatter(buf).Format([]*execution.RunResult{createTestResult(), passing}))
	out := buf.String()

	assert.Contains(t, out, colorGreen+"✓"+colorReset)
	assert.Contains(t, out, "No steps executed.")
	assert.True(t, strings.HasSuffix(out, "Walkthroughs: 2 total, 1 passed\n"))
}

func TestJSONFormatter(t *testing.T) {
	result := createTestResult()

	for _, indent := range []bool{false, true} {
		buf := &bytes.Buffer{}
		require.NoError(t, NewJSONFormatter(buf, indent).Format([]*execution.RunResult{result}))

		var decoded []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)

		assert.Equal(t, "bank-account", decoded[0]["walkthrough_name"])
		assert.Equal(t, result.GetID().String(), decoded[0]["run_id"])
		assert.Equal(t, "fail", decoded[0]["status"])

		steps := decoded[0]["steps"].([]interface{})
		require.Len(t, steps, 3)
		assert.Equal(t, "sufficient_funds", steps[1].(map[string]interface{})["rule"])
		assert.Equal(t, indent, strings.Contains(buf.String(), "\n  "))
	}
}

func TestYAMLFormatter(t *testing.T) {
	result := createTestResult()
	buf := &bytes.Buffer{}

	require.NoError(t, NewYAMLFormatter(buf).Format([]*execution.RunResult{result}))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "bank-account", decoded[0]["walkthrough_name"])
	assert.Equal(t, result.GetID().String(), decoded[0]["run_id"])
	summary := decoded[0]["summary"].(map[string]interface{})
	assert.EqualValues(t, 3, summary["total_steps"])
	assert.EqualValues(t, 1, summary["skipped_steps"])
}
