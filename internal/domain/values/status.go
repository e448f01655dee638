package values

import "fmt"

// Status is the outcome of a walkthrough step or of a whole run.
type Status string

const (
	// StatusPass indicates the step behaved as expected
	StatusPass Status = "pass"
	// StatusFail indicates an expectation did not hold
	StatusFail Status = "fail"
	// StatusError indicates the step could not be evaluated or raised an unexpected error
	StatusError Status = "error"
	// StatusSkipped indicates the step did not run because the run was cancelled
	StatusSkipped Status = "skipped"
)

// Precedence returns the numeric precedence of this status.
// Higher values win when step statuses are folded into a run status.
//
// Precedence: Fail (3) > Error (2) > Skipped (1) > Pass (0)
func (s Status) Precedence() int {
	switch s {
	case StatusFail:
		return 3
	case StatusError:
		return 2
	case StatusSkipped:
		return 1
	case StatusPass:
		return 0
	default:
		return -1
	}
}

// IsFailure returns true if this status represents a failure or error
func (s Status) IsFailure() bool {
	return s == StatusFail || s == StatusError
}

// IsSuccess returns true if this status represents success
func (s Status) IsSuccess() bool {
	return s == StatusPass
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusPass, StatusFail, StatusError, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}

// Worst returns whichever of s and other has the higher precedence.
func (s Status) Worst(other Status) Status {
	if other.Precedence() > s.Precedence() {
		return other
	}
	return s
}
