package llm

import (
	"fmt"
)

// creates a new text generator with auto-configuration from environment variables
func NewGenerator() (TextGenerator, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load generator config: %w", err)
	}

	return NewGeneratorWithConfig(config)
}

// creates a new text generator with explicit configuration
func NewGeneratorWithConfig(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
