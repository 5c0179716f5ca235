package generator

import "context"

// ModelBackend abstracts the generative model, so it can be swapped or
// mocked. Implementations must honor ctx cancellation; the transport layer
// owns the timeout.
type ModelBackend interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Prompt is the message pair sent to the backend.
type Prompt struct {
	System string
	User   string
}

// BackendSettings carries the configuration a concrete backend needs.
type BackendSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
