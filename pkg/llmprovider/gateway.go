package llmprovider

import (
	"context"
	"strings"
)

// Default sampling settings for extraction calls.
const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 2000
)

// Generator is satisfied by Manager and by any single Provider.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Gateway turns a prompt and an optional system instruction into generated text.
type Gateway struct {
	generator   Generator
	temperature float64
	maxTokens   int
}

// NewGateway creates a Gateway. Non-positive temperature or maxTokens fall back to the defaults.
func NewGateway(generator Generator, temperature float64, maxTokens int) *Gateway {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Gateway{
		generator:   generator,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate sends prompt as a single user message. An empty systemInstruction is omitted.
func (g *Gateway) Generate(ctx context.Context, prompt string, systemInstruction string) (string, error) {
	req := &Request{
		Messages:    []Message{TextMessage(RoleUser, prompt)},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		JSONMode:    true,
	}
	if strings.TrimSpace(systemInstruction) != "" {
		sys := TextMessage(RoleSystem, systemInstruction)
		req.SystemInstruction = &sys
	}

	resp, err := g.generator.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
