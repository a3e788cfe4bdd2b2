package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultMaxTokens      = 4096
	defaultTemperature    = float32(0.7)
)

// loadConfig loads generator configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI // default
	}

	var apiKey, model string

	switch provider {
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}

		model = defaultOpenAIModel
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}

		model = defaultAnthropicModel
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}

	if m := os.Getenv("GENERATOR_MODEL"); m != "" {
		model = m
	}

	maxTokens := defaultMaxTokens
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := defaultTemperature
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}
