package transcript

import "context"

// UseCase extracts structured meeting notes from a transcript.
type UseCase interface {
	// Process runs the extraction pipeline and returns the canonical result.
	Process(ctx context.Context, input ProcessInput) (ProcessingResult, error)

	// ProcessJSON is Process with the result rendered as indented JSON.
	ProcessJSON(ctx context.Context, input ProcessInput) (string, error)
}

// CompletionGateway is the text-generation backend used by the pipeline.
// An empty systemInstruction means none is sent.
// Implementations must be safe for concurrent use.
type CompletionGateway interface {
	Generate(ctx context.Context, prompt string, systemInstruction string) (string, error)
}
