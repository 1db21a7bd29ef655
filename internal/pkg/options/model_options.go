package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Known provider ids. Each maps to an eino-ext chat model builder.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepseek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderOllama   = "ollama"
)

// ModelOptions configures the LLM backend used by the chat client.
type ModelOptions struct {
	Provider    string  `json:"provider" mapstructure:"provider"`
	Model       string  `json:"id" mapstructure:"id"`
	APIKey      string  `json:"api-key" mapstructure:"api-key"`
	BaseURL     string  `json:"base-url" mapstructure:"base-url"`
	MaxTokens   int     `json:"max-tokens" mapstructure:"max-tokens"`
	Temperature float32 `json:"temperature" mapstructure:"temperature"`
}

func NewModelOptions() *ModelOptions {
	return &ModelOptions{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o",
		APIKey:      "${OPENAI_API_KEY}",
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

func (o *ModelOptions) Validate() []error {
	var errs []error
	switch o.Provider {
	case ProviderOpenAI, ProviderDeepseek, ProviderQwen, ProviderOllama:
	default:
		errs = append(errs, fmt.Errorf("unknown model provider %q", o.Provider))
	}
	if o.Model == "" {
		errs = append(errs, fmt.Errorf("model id is required"))
	}
	if o.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("max-tokens must be positive, got %d", o.MaxTokens))
	}
	return errs
}

func (o *ModelOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Provider, "model.provider", o.Provider, "LLM provider: openai, deepseek, qwen or ollama.")
	fs.StringVar(&o.Model, "model.id", o.Model, "Model id to use for the conversation.")
	fs.StringVar(&o.APIKey, "model.api-key", o.APIKey, "Provider API key, or ${ENV_VAR} to read from the environment.")
	fs.StringVar(&o.BaseURL, "model.base-url", o.BaseURL, "Provider base URL override (OpenAI-compatible endpoint).")
	fs.IntVar(&o.MaxTokens, "model.max-tokens", o.MaxTokens, "Maximum completion tokens per model call.")
	fs.Float32Var(&o.Temperature, "model.temperature", o.Temperature, "Sampling temperature.")
}

// ResolvedAPIKey expands ${VAR} / {VAR} placeholders against the environment.
func (o *ModelOptions) ResolvedAPIKey() string {
	return ResolveEnvValue(o.APIKey)
}

// ResolveEnvValue resolves "${NAME}" and "{NAME}" placeholders to the value
// of the environment variable NAME; any other string passes through.
func ResolveEnvValue(v string) string {
	trimmed := strings.TrimSpace(v)
	if strings.HasPrefix(trimmed, "${") && strings.HasSuffix(trimmed, "}") {
		return os.Getenv(trimmed[2 : len(trimmed)-1])
	}
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return os.Getenv(trimmed[1 : len(trimmed)-1])
	}
	return v
}
