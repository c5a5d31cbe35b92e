package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"syncnotes/internal/transcript"
	"syncnotes/pkg/llmjson"
)

// Process sends the transcript to the completion gateway and validates the model output.
func (uc *implUseCase) Process(ctx context.Context, input transcript.ProcessInput) (transcript.ProcessingResult, error) {
	text := strings.TrimSpace(input.Transcript)
	if text == "" {
		return transcript.ProcessingResult{}, &transcript.ValidationError{
			Reason: "empty transcript",
			Err:    transcript.ErrEmptyInput,
		}
	}

	uc.l.Infof(ctx, "transcript.Process: transcript_length=%d", len(text))

	output, err := uc.gateway.Generate(ctx, buildUserPrompt(text), systemInstruction)
	if err != nil {
		uc.l.Errorf(ctx, "transcript.Process: completion failed: %v", err)
		return transcript.ProcessingResult{}, &transcript.GatewayError{Err: err}
	}

	doc, err := llmjson.Extract(output)
	if err != nil {
		uc.l.Warnf(ctx, "transcript.Process: unparseable model response (%d bytes): %v", len(output), err)
		return transcript.ProcessingResult{}, &transcript.ValidationError{
			Reason: "failed to parse model response",
			Err:    err,
		}
	}

	fields, err := uc.readFields(doc)
	if err != nil {
		uc.l.Warnf(ctx, "transcript.Process: unusable model response: %v", err)
		return transcript.ProcessingResult{}, err
	}

	result, err := transcript.NewProcessingResult(fields.summary, fields.decisions, fields.tasks)
	if err != nil {
		uc.l.Warnf(ctx, "transcript.Process: %v", err)
		return transcript.ProcessingResult{}, err
	}

	uc.l.Infof(ctx, "transcript.Process: extracted decisions=%d tasks=%d (raw tasks=%d)",
		len(result.Decisions), len(result.Tasks), len(fields.tasks))

	return result, nil
}

// ProcessJSON runs Process and renders the result with two-space indentation.
func (uc *implUseCase) ProcessJSON(ctx context.Context, input transcript.ProcessInput) (string, error) {
	result, err := uc.Process(ctx, input)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
