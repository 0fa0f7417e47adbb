package provider

import "errors"

// ErrRequestFailed marks generation calls that failed at the transport or
// provider level. The underlying cause is always attached.
var ErrRequestFailed = errors.New("generation request failed")

// Model represents a language model available from a provider.
type Model struct {
	Name       string `json:"name"`
	ModifiedAt string `json:"modified_at,omitempty"`
	Size       int64  `json:"size,omitempty"`
}

// Request carries one text-generation call. System and User are the two
// prompt halves; the remaining fields are sampling parameters.
type Request struct {
	System      string
	User        string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Provider is the opaque text-generation capability. Implementations do
// not retry; a failure terminates the attempt.
type Provider interface {
	// Complete sends one request and returns the raw generated text.
	Complete(req Request) (string, error)

	// ListModels returns the models available from the provider.
	ListModels() ([]Model, error)

	// CheckConnection verifies that the provider is reachable.
	CheckConnection() error
}
