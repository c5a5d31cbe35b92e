package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// LangChainAdapter adapts a langchaingo model (OpenAI, Anthropic and OpenAI-compatible
// endpoints) to the Provider interface.
type LangChainAdapter struct {
	name     string
	model    string
	llm      llms.Model
	timeout  time.Duration
	jsonMode bool
}

// LangChainOption configures a LangChainAdapter.
type LangChainOption func(*LangChainAdapter)

// WithTimeout bounds every call made through the adapter.
func WithTimeout(d time.Duration) LangChainOption {
	return func(a *LangChainAdapter) {
		a.timeout = d
	}
}

// WithJSONModeSupport marks the backend as honouring the JSON response format.
func WithJSONModeSupport() LangChainOption {
	return func(a *LangChainAdapter) {
		a.jsonMode = true
	}
}

// NewLangChainAdapter wraps llm under the given provider and model names.
func NewLangChainAdapter(name, model string, llm llms.Model, opts ...LangChainOption) *LangChainAdapter {
	a := &LangChainAdapter{name: name, model: model, llm: llm}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GenerateContent implements Provider interface
func (a *LangChainAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.llm.GenerateContent(ctx, a.convertMessages(req), a.buildCallOptions(req)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	if choice.Content == "" {
		return nil, fmt.Errorf("%s: %w (stop reason %q)", a.name, ErrEmptyResponse, choice.StopReason)
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, choice.Content),
		ProviderName: a.name,
		ModelName:    a.model,
		Usage:        usageFromGenerationInfo(choice.GenerationInfo),
	}, nil
}

// Name returns provider name
func (a *LangChainAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *LangChainAdapter) Model() string {
	return a.model
}

func (a *LangChainAdapter) convertMessages(req *Request) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, text))
		}
	}

	for _, msg := range req.Messages {
		messages = append(messages, llms.TextParts(mapMessageRole(msg.Role), msg.Text()))
	}

	return messages
}

func mapMessageRole(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

func (a *LangChainAdapter) buildCallOptions(req *Request) []llms.CallOption {
	var options []llms.CallOption

	if req.Temperature > 0 {
		options = append(options, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		options = append(options, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.JSONMode && a.jsonMode {
		options = append(options, llms.WithJSONMode())
	}

	return options
}

// usageFromGenerationInfo reads token counts; OpenAI and Anthropic report them under different keys.
func usageFromGenerationInfo(info map[string]any) *Usage {
	usage := &Usage{
		InputTokens:  intFromInfo(info, "PromptTokens", "InputTokens"),
		OutputTokens: intFromInfo(info, "CompletionTokens", "OutputTokens"),
		TotalTokens:  intFromInfo(info, "TotalTokens"),
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return usage
}

func intFromInfo(info map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := info[k].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
