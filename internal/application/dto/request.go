// Package dto contains data transfer objects for application layer use cases.
package dto

// RunWalkthroughsRequest encapsulates all inputs needed to replay walkthroughs.
type RunWalkthroughsRequest struct {
	Paths     []string
	Execution ExecutionOptions
	Metadata  RequestMetadata
}

// ExecutionOptions controls how walkthroughs are executed.
type ExecutionOptions struct {
	// Concurrency limits how many walkthrough files run at once (0 = one per file)
	Concurrency int
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
