// Package llm builds the chat model for the conversation loop. All four
// providers speak the OpenAI-compatible tool-calling contract through their
// eino-ext implementations.
package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gptr"
	einoDeepseek "github.com/cloudwego/eino-ext/components/model/deepseek"
	einoOllama "github.com/cloudwego/eino-ext/components/model/ollama"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	einoQwen "github.com/cloudwego/eino-ext/components/model/qwen"
	"github.com/cloudwego/eino/components/model"

	"github.com/openearth/catalyst/internal/pkg/options"
)

// NewChatModel constructs a tool-calling chat model for the configured
// provider.
func NewChatModel(ctx context.Context, o *options.ModelOptions) (model.ToolCallingChatModel, error) {
	switch o.Provider {
	case options.ProviderOpenAI:
		return newOpenAI(ctx, o)
	case options.ProviderDeepseek:
		return newDeepseek(ctx, o)
	case options.ProviderQwen:
		return newQwen(ctx, o)
	case options.ProviderOllama:
		return newOllama(ctx, o)
	default:
		return nil, fmt.Errorf("unknown model provider %q", o.Provider)
	}
}

func newOpenAI(ctx context.Context, o *options.ModelOptions) (model.ToolCallingChatModel, error) {
	cfg := &einoOpenAI.ChatModelConfig{
		Model:       o.Model,
		APIKey:      o.ResolvedAPIKey(),
		MaxTokens:   gptr.Of(o.MaxTokens),
		Temperature: gptr.Of(o.Temperature),
		ResponseFormat: &einoOpenAI.ChatCompletionResponseFormat{
			Type: einoOpenAI.ChatCompletionResponseFormatTypeText,
		},
	}
	// BaseURL only for non-default OpenAI-compatible endpoints.
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	return einoOpenAI.NewChatModel(ctx, cfg)
}

func newDeepseek(ctx context.Context, o *options.ModelOptions) (model.ToolCallingChatModel, error) {
	cfg := &einoDeepseek.ChatModelConfig{
		Model:       o.Model,
		APIKey:      o.ResolvedAPIKey(),
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	return einoDeepseek.NewChatModel(ctx, cfg)
}

func newQwen(ctx context.Context, o *options.ModelOptions) (model.ToolCallingChatModel, error) {
	cfg := &einoQwen.ChatModelConfig{
		Model:       o.Model,
		APIKey:      o.ResolvedAPIKey(),
		MaxTokens:   gptr.Of(o.MaxTokens),
		Temperature: gptr.Of(o.Temperature),
		ResponseFormat: &einoOpenAI.ChatCompletionResponseFormat{
			Type: "text",
		},
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	return einoQwen.NewChatModel(ctx, cfg)
}

func newOllama(ctx context.Context, o *options.ModelOptions) (model.ToolCallingChatModel, error) {
	cfg := &einoOllama.ChatModelConfig{
		BaseURL: "http://127.0.0.1:11434/v1",
		Model:   o.Model,
		Options: &einoOllama.Options{
			Temperature: o.Temperature,
		},
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	return einoOllama.NewChatModel(ctx, cfg)
}
