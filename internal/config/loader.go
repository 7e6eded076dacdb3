package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from (lowest to highest precedence) built-in
// defaults, an optional config.yaml, a .env file and the environment.
// configFile may be empty, in which case ./configs/config.yaml and
// ./config.yaml are tried.
func Load(configFile string) (*Config, error) {
	loadEnvFile(".env", "../.env", "../../.env")

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads the first .env file found. Existing environment
// variables are never overwritten.
func loadEnvFile(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "3000")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("analysis.mode", ModeRemote)
	v.SetDefault("analysis.fallback", FallbackLocal)
	v.SetDefault("analysis.response_format", "flat")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.endpoint", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.temperature", 0.7)
	v.SetDefault("gemini.top_p", 0.95)
	v.SetDefault("gemini.max_output_tokens", 4096)
	v.SetDefault("gemini.timeout", "60s")
	v.SetDefault("gemini.proxy_enabled", false)
	v.SetDefault("gemini.proxy_url", "http://127.0.0.1:4780")
}

// bindEnv maps the conventional variable names that don't follow the
// SECTION_KEY pattern.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT", "SERVER_PORT")
	_ = v.BindEnv("server.host", "HOST", "SERVER_HOST")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.endpoint", "GEMINI_ENDPOINT")
	_ = v.BindEnv("gemini.proxy_url", "GEMINI_PROXY_URL", "HTTPS_PROXY", "HTTP_PROXY")
}

func normalize(cfg *Config) {
	cfg.Analysis.Mode = strings.ToLower(strings.TrimSpace(cfg.Analysis.Mode))
	cfg.Analysis.Fallback = strings.ToLower(strings.TrimSpace(cfg.Analysis.Fallback))
	cfg.Analysis.ResponseFormat = strings.ToLower(strings.TrimSpace(cfg.Analysis.ResponseFormat))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Gemini.APIKey = strings.TrimSpace(cfg.Gemini.APIKey)
}

// Validate checks enumerated settings and required values.
func Validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}

	switch cfg.Analysis.Mode {
	case ModeLocal, ModeRemote, ModeQuick:
	default:
		return fmt.Errorf("analysis.mode must be local, remote or quick, got %q", cfg.Analysis.Mode)
	}

	switch cfg.Analysis.Fallback {
	case FallbackLocal, FallbackPlaceholder:
	default:
		return fmt.Errorf("analysis.fallback must be local or placeholder, got %q", cfg.Analysis.Fallback)
	}

	switch cfg.Analysis.ResponseFormat {
	case "flat", "envelope":
	default:
		return fmt.Errorf("analysis.response_format must be flat or envelope, got %q", cfg.Analysis.ResponseFormat)
	}

	switch cfg.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", cfg.Log.Format)
	}

	if cfg.Gemini.Timeout <= 0 {
		return errors.New("gemini.timeout must be positive")
	}
	if cfg.Gemini.ProxyEnabled && cfg.Gemini.ProxyURL == "" {
		return errors.New("gemini.proxy_url is required when the proxy is enabled")
	}

	return nil
}
