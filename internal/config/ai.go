package config

import "os"

// Report generator providers. Both speak the OpenAI chat-completions protocol.
const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
)

var providerDefaults = map[string]struct {
	baseURL string
	model   string
	envKey  string
}{
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-r1-0528", envKey: "DEEPSEEK_API_KEY"},
	ProviderOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-3.5-turbo", envKey: "OPENAI_API_KEY"},
}

// AIConfig holds all report-generation settings
type AIConfig struct {
	Provider    string  `koanf:"provider"`
	APIKey      string  `koanf:"api_key" json:"-"` // Never serialize
	BaseURL     string  `koanf:"base_url"`
	Model       string  `koanf:"model"`
	TimeoutMS   int     `koanf:"timeout_ms"`
	Temperature float32 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens"`
}

// DefaultAIConfig returns the DeepSeek configuration with the key taken from the environment
func DefaultAIConfig() AIConfig {
	cfg := AIConfig{Provider: ProviderDeepSeek}
	cfg.applyDefaults()
	return cfg
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// IsKnownProvider reports whether the provider has built-in defaults
func (c *AIConfig) IsKnownProvider() bool {
	_, ok := providerDefaults[c.Provider]
	return ok
}

func (c *AIConfig) applyDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderDeepSeek
	}
	if d, ok := providerDefaults[c.Provider]; ok {
		if c.BaseURL == "" {
			c.BaseURL = d.baseURL
		}
		if c.Model == "" {
			c.Model = d.model
		}
		if c.APIKey == "" {
			c.APIKey = os.Getenv(d.envKey)
		}
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = 60000 // reasoning models are slow
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2000
	}
}
