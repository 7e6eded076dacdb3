package config

import "time"

// Analysis modes.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
	ModeQuick  = "quick"
)

// Fallback strategies used when a remote analysis fails.
const (
	FallbackLocal       = "local"
	FallbackPlaceholder = "placeholder"
)

// placeholderAPIKey is the value shipped in the sample .env file.
const placeholderAPIKey = "your_gemini_api_key_here"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AnalysisConfig struct {
	// Mode is one of local, remote or quick.
	Mode string `mapstructure:"mode"`
	// Fallback is what remote mode returns when the model call fails.
	Fallback string `mapstructure:"fallback"`
	// ResponseFormat is flat or envelope.
	ResponseFormat string `mapstructure:"response_format"`
}

type GeminiConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	Temperature     float32       `mapstructure:"temperature"`
	TopP            float32       `mapstructure:"top_p"`
	MaxOutputTokens int32         `mapstructure:"max_output_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ProxyEnabled    bool          `mapstructure:"proxy_enabled"`
	ProxyURL        string        `mapstructure:"proxy_url"`
	// Endpoint overrides the Generative Language API base URL.
	Endpoint string `mapstructure:"endpoint"`
}

// HasCredential reports whether a usable API key is configured.
func (g GeminiConfig) HasCredential() bool {
	return g.APIKey != "" && g.APIKey != placeholderAPIKey
}
