package config

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	apperrors "github.com/encapsulab/encapsulab/internal/application/errors"
	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
)

// Step IDs and subject names must be alphanumeric with dashes and underscores
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var knownRules = map[domainerrors.Rule]bool{
	domainerrors.RuleRequired:        true,
	domainerrors.RulePositive:        true,
	domainerrors.RuleNonNegative:     true,
	domainerrors.RuleSufficientFunds: true,
	domainerrors.RuleMinYear:         true,
	domainerrors.RuleRange:           true,
	domainerrors.RuleFinalized:       true,
	domainerrors.RuleNumeric:         true,
}

// Validate performs structural validation of a walkthrough and reports every
// problem found, not just the first.
func Validate(w *Walkthrough) error {
	var problems []string

	problems = append(problems, validateMetadata(w)...)
	problems = append(problems, validateSteps(w.Steps)...)

	if len(problems) > 0 {
		return apperrors.NewValidationError("walkthrough", "structure is invalid", problems...)
	}
	return nil
}

func validateMetadata(w *Walkthrough) []string {
	var problems []string

	if w.Name == "" {
		problems = append(problems, "walkthrough name is required")
	}

	if w.Version == "" {
		problems = append(problems, "walkthrough version is required")
	} else if _, err := semver.StrictNewVersion(w.Version); err != nil {
		problems = append(problems, fmt.Sprintf("walkthrough version %q is not valid (expected format: X.Y.Z)", w.Version))
	}

	if w.Requires != "" {
		if _, err := semver.NewConstraint(w.Requires); err != nil {
			problems = append(problems, fmt.Sprintf("requires %q is not a valid version constraint: %v", w.Requires, err))
		}
	}

	return problems
}

func validateSteps(steps []Step) []string {
	if len(steps) == 0 {
		return []string{"at least one step is required"}
	}

	var problems []string
	stepIDs := make(map[string]bool)
	subjects := make(map[string]bool)

	for i, step := range steps {
		label := fmt.Sprintf("step %d", i)
		if step.ID != "" {
			label = fmt.Sprintf("step %d (%s)", i, step.ID)
		}

		switch {
		case step.ID == "":
			problems = append(problems, label+": id is required")
		case !identifierPattern.MatchString(step.ID):
			problems = append(problems, fmt.Sprintf("%s: id is invalid (must be alphanumeric with dashes/underscores)", label))
		case stepIDs[step.ID]:
			problems = append(problems, fmt.Sprintf("duplicate step ID: %s", step.ID))
		}
		stepIDs[step.ID] = true

		if step.Subject == "" {
			problems = append(problems, label+": subject is required")
		} else if !identifierPattern.MatchString(step.Subject) {
			problems = append(problems, fmt.Sprintf("%s: subject %q is invalid (must be alphanumeric with dashes/underscores)", label, step.Subject))
		}

		switch {
		case step.Create != "" && step.Call != "":
			problems = append(problems, label+": create and call are mutually exclusive")
		case step.Create == "" && step.Call == "":
			problems = append(problems, label+": one of create or call is required")
		case step.Create != "":
			if subjects[step.Subject] {
				problems = append(problems, fmt.Sprintf("%s: subject %s is already created", label, step.Subject))
			}
			subjects[step.Subject] = true
		default:
			if step.Subject != "" && !subjects[step.Subject] {
				problems = append(problems, fmt.Sprintf("%s: subject %s is used before it is created", label, step.Subject))
			}
		}

		if step.ExpectError != "" && !knownRules[domainerrors.Rule(step.ExpectError)] {
			problems = append(problems, fmt.Sprintf("%s: expect_error %q is not a known rule", label, step.ExpectError))
		}
	}

	return problems
}
