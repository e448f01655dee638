// Package config provides infrastructure-side processing of loaded walkthroughs.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/encapsulab/encapsulab/internal/config"
)

// Variable pattern: {{ .vars.key }}
var varPattern = regexp.MustCompile(`\{\{\s*\.vars\.([a-zA-Z0-9_.]+)\s*\}\}`)

// VariableSubstitutor performs variable substitution in walkthroughs.
type VariableSubstitutor struct{}

// NewVariableSubstitutor creates a new variable substitutor.
func NewVariableSubstitutor() *VariableSubstitutor {
	return &VariableSubstitutor{}
}

// Substitute replaces {{ .vars.key }} patterns with values from the
// walkthrough's vars map in step descriptions, args and expect expressions.
// Nested paths like {{ .vars.account.owner }} are supported. An arg whose
// whole value is a single reference takes the variable's value with its
// type intact, so numbers stay numbers.
// Returns an error if a referenced variable is not found.
// Modifies the walkthrough in place.
func (s *VariableSubstitutor) Substitute(w *config.Walkthrough) error {
	for i := range w.Steps {
		step := &w.Steps[i]

		var err error
		step.Description, err = s.substituteInString(step.Description, w.Vars)
		if err != nil {
			return fmt.Errorf("step %s: %w", step.ID, err)
		}

		for j, expression := range step.Expect {
			step.Expect[j], err = s.substituteInString(expression, w.Vars)
			if err != nil {
				return fmt.Errorf("step %s, expect %d: %w", step.ID, j, err)
			}
		}

		if err := s.substituteInMap(step.Args, w.Vars); err != nil {
			return fmt.Errorf("step %s, args: %w", step.ID, err)
		}
	}

	return nil
}

// substituteInString replaces patterns with their formatted values.
func (s *VariableSubstitutor) substituteInString(str string, vars map[string]interface{}) (string, error) {
	var lastErr error

	result := varPattern.ReplaceAllStringFunc(str, func(match string) string {
		submatches := varPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			lastErr = fmt.Errorf("invalid variable pattern: %s", match)
			return match
		}

		value, err := lookupVar(vars, submatches[1])
		if err != nil {
			lastErr = err
			return match
		}

		return fmt.Sprintf("%v", value)
	})

	if lastErr != nil {
		return "", lastErr
	}
	return result, nil
}

// substituteValue substitutes a single arg value. A string that is exactly
// one reference yields the referenced value unchanged.
func (s *VariableSubstitutor) substituteValue(str string, vars map[string]interface{}) (interface{}, error) {
	if loc := varPattern.FindStringSubmatchIndex(str); loc != nil &&
		loc[0] == 0 && loc[1] == len(str) {
		return lookupVar(vars, str[loc[2]:loc[3]])
	}
	return s.substituteInString(str, vars)
}

// substituteInMap recursively substitutes variables in map values.
// Modifies the map in place.
func (s *VariableSubstitutor) substituteInMap(m map[string]interface{}, vars map[string]interface{}) error {
	for key, value := range m {
		switch v := value.(type) {
		case string:
			substituted, err := s.substituteValue(v, vars)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			m[key] = substituted

		case map[string]interface{}:
			if err := s.substituteInMap(v, vars); err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}

		case []interface{}:
			for i, elem := range v {
				str, ok := elem.(string)
				if !ok {
					continue
				}
				substituted, err := s.substituteValue(str, vars)
				if err != nil {
					return fmt.Errorf("key %s[%d]: %w", key, i, err)
				}
				v[i] = substituted
			}
		}
	}

	return nil
}

// lookupVar looks up a variable value by dotted path (e.g., "account.owner").
func lookupVar(vars map[string]interface{}, path string) (interface{}, error) {
	parts := strings.Split(path, ".")
	current := interface{}(vars)

	for i, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("variable path %s: cannot access %s (not a map)", path, strings.Join(parts[:i+1], "."))
		}

		value, exists := m[part]
		if !exists {
			return nil, fmt.Errorf("variable not found: %s", path)
		}

		current = value
	}

	return current, nil
}
