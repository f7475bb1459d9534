package ai

import "context"

// Response carries what a provider tier hands back: free-form text expected to
// embed a JSON object, plus any evidence citations the model attached.
type Response struct {
	Text      string
	Citations []string
}

// Provider is one live tier in the fallback sequence
type Provider interface {
	Model() string
	Analyze(ctx context.Context, pageURL, hostname string) (Response, error)
}
