package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	apperrors "github.com/encapsulab/encapsulab/internal/application/errors"
)

// CheckCompatibility verifies the walkthrough's requires constraint against
// the running tool version. Development builds, whose version is not semver,
// satisfy every constraint.
func CheckCompatibility(w *Walkthrough, toolVersion string) error {
	if w.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(w.Requires)
	if err != nil {
		return apperrors.NewValidationError("requires", fmt.Sprintf("invalid constraint %q", w.Requires))
	}

	current, err := semver.NewVersion(toolVersion)
	if err != nil {
		return nil
	}

	if ok, reasons := constraint.Validate(current); !ok {
		details := make([]string, 0, len(reasons))
		for _, r := range reasons {
			details = append(details, r.Error())
		}
		return apperrors.NewValidationError("requires",
			fmt.Sprintf("walkthrough %s needs %s, running %s", w.Name, w.Requires, current), details...)
	}
	return nil
}
