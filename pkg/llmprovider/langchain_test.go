package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
	deadline bool
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.messages = messages
	for _, opt := range options {
		opt(&s.opts)
	}
	_, s.deadline = ctx.Deadline()
	return s.resp, s.err
}

func (s *stubModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestLangChainAdapter_GenerateContent(t *testing.T) {
	model := &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        `{"summary":"ok"}`,
		GenerationInfo: map[string]any{"PromptTokens": 42, "CompletionTokens": 8, "TotalTokens": 50},
	}}}}
	adapter := NewLangChainAdapter("openai", "gpt-4o", model, WithTimeout(time.Second), WithJSONModeSupport())

	sys := TextMessage(RoleSystem, "be terse")
	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &sys,
		Messages:          []Message{TextMessage(RoleUser, "hello"), TextMessage(RoleAssistant, "hi")},
		Temperature:       0.3,
		MaxTokens:         2000,
		JSONMode:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"ok"}`, resp.Text())
	assert.Equal(t, "openai", resp.ProviderName)
	assert.Equal(t, "gpt-4o", resp.ModelName)
	assert.Equal(t, &Usage{InputTokens: 42, OutputTokens: 8, TotalTokens: 50}, resp.Usage)

	require.Len(t, model.messages, 3)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, "be terse", model.messages[0].Parts[0].(llms.TextContent).Text)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, model.messages[2].Role)

	assert.InDelta(t, 0.3, model.opts.Temperature, 1e-9)
	assert.Equal(t, 2000, model.opts.MaxTokens)
	assert.True(t, model.opts.JSONMode)
	assert.True(t, model.deadline)
}

func TestLangChainAdapter_NoJSONModeWithoutSupport(t *testing.T) {
	model := &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        "text",
		GenerationInfo: map[string]any{"InputTokens": 3, "OutputTokens": 4},
	}}}}
	adapter := NewLangChainAdapter("anthropic", "claude", model)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{TextMessage(RoleUser, "hello")},
		JSONMode: true,
	})
	require.NoError(t, err)

	assert.False(t, model.opts.JSONMode)
	assert.False(t, model.deadline)
	assert.Len(t, model.messages, 1)
	assert.Equal(t, &Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7}, resp.Usage)
}

func TestLangChainAdapter_Errors(t *testing.T) {
	tests := []struct {
		name  string
		model *stubModel
		want  error
	}{
		{name: "model error", model: &stubModel{err: errors.New("401 unauthorized")}},
		{name: "nil response", model: &stubModel{}, want: ErrEmptyResponse},
		{name: "no choices", model: &stubModel{resp: &llms.ContentResponse{}}, want: ErrEmptyResponse},
		{name: "empty content", model: &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{StopReason: "length"}}}}, want: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewLangChainAdapter("openai", "gpt-4o", tt.model)
			_, err := adapter.GenerateContent(context.Background(), &Request{Messages: []Message{TextMessage(RoleUser, "hello")}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "openai")
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
