package llm

import "context"

// represents different generation providers
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// one generation call against an external model
type TextGenerationRequest struct {
	System string // system instruction
	Prompt string // user prompt
}

// produces raw model text from a prompt plus system instruction.
// implementations make exactly one attempt per call; retry policy
// belongs to the caller.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (string, error)
	Model() string
}

// holds configuration for generator initialization
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string  // e.g. "gpt-4o" or "claude-sonnet-4-20250514"
	MaxTokens   int
	Temperature float32 // 0.0 to 1.0
}
