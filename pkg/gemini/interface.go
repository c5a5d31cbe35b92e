package gemini

import "context"

// IGemini is the generateContent surface llmprovider.GeminiAdapter needs.
// It must be safe for concurrent use: one client serves every extraction request.
type IGemini interface {
	// GenerateContent runs one non-streaming completion and keeps the first candidate.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model is the resolved model name, DefaultModel when none was configured.
	Model() string
}

// New validates cfg, fills its defaults and returns a REST-backed client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
