package dto

import (
	"time"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// RunWalkthroughsResponse contains the results of replaying walkthroughs.
type RunWalkthroughsResponse struct {
	// Results holds one run result per requested path, in request order
	Results []*execution.RunResult

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// Status folds every run's status into the worst one.
func (r *RunWalkthroughsResponse) Status() values.Status {
	status := values.StatusPass
	for _, res := range r.Results {
		status = status.Worst(res.Status)
	}
	return status
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}
