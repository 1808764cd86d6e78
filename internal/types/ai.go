// internal/types/ai.go
//
// AI request and response contracts.
//
// Context
// -------
// These are the shapes the model-invocation subsystems exchange.  The
// numeric bounds are part of the external contract and must not drift:
// prompt and system message cap at 4000 characters, sampling knobs stay in
// their provider-documented ranges, and at most four stop sequences are
// allowed.
package types

// ModelName identifies one of the catalogued AI models.
type ModelName string

const (
	ModelGPT4          ModelName = "gpt-4"
	ModelGPT4Turbo     ModelName = "gpt-4-turbo-preview"
	ModelGPT35Turbo    ModelName = "gpt-3.5-turbo"
	ModelClaude3Opus   ModelName = "claude-3-opus"
	ModelClaude3Sonnet ModelName = "claude-3-sonnet"
	ModelClaude21      ModelName = "claude-2.1"
	ModelClaude2       ModelName = "claude-2"
)

// ModelProvider identifies the vendor behind a model.
type ModelProvider string

const (
	ProviderOpenAI    ModelProvider = "openai"
	ProviderAnthropic ModelProvider = "anthropic"
	ProviderGoogle    ModelProvider = "google"
)

var modelProviders = map[ModelName]ModelProvider{
	ModelGPT4:          ProviderOpenAI,
	ModelGPT4Turbo:     ProviderOpenAI,
	ModelGPT35Turbo:    ProviderOpenAI,
	ModelClaude3Opus:   ProviderAnthropic,
	ModelClaude3Sonnet: ProviderAnthropic,
	ModelClaude21:      ProviderAnthropic,
	ModelClaude2:       ProviderAnthropic,
}

// Valid reports whether m is one of the catalogued model names.
func (m ModelName) Valid() bool {
	_, ok := modelProviders[m]
	return ok
}

// Provider returns the vendor for a catalogued model, or the empty string
// for unknown names.
func (m ModelName) Provider() ModelProvider { return modelProviders[m] }

// AIRequest is the parameter envelope for a single model invocation.
type AIRequest struct {
	Prompt           string    `json:"prompt" validate:"required,min=1,max=4000"`
	Model            ModelName `json:"model" validate:"required,model_name"`
	Temperature      float64   `json:"temperature" validate:"gte=0,lte=1"`
	MaxTokens        *int      `json:"max_tokens,omitempty" validate:"omitempty,gte=1,lte=4000"`
	TopP             float64   `json:"top_p" validate:"gte=0,lte=1"`
	FrequencyPenalty float64   `json:"frequency_penalty" validate:"gte=-2,lte=2"`
	PresencePenalty  float64   `json:"presence_penalty" validate:"gte=-2,lte=2"`
	Stop             []string  `json:"stop,omitempty" validate:"omitempty,max=4"`
	SystemMessage    string    `json:"system_message,omitempty" validate:"omitempty,max=4000"`
}

// NewAIRequest returns a request with the default sampling parameters:
// temperature 0.7 and top_p 1.0.
func NewAIRequest(prompt string, model ModelName) AIRequest {
	return AIRequest{
		Prompt:      prompt,
		Model:       model,
		Temperature: 0.7,
		TopP:        1.0,
	}
}

// Validate checks the request against the contract bounds and returns a
// Validation error listing every out-of-range field.
func (r *AIRequest) Validate() error { return Validate(r) }

// AIResponse is the normalized reply from any provider.
type AIResponse struct {
	Text         string         `json:"text"`
	Model        ModelName      `json:"model"`
	Usage        map[string]int `json:"usage"`
	FinishReason string         `json:"finish_reason"`
	Created      int64          `json:"created"`
}
