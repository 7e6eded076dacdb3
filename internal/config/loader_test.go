package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray .env or
// config.yaml is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	// Empty values count as unset.
	for _, key := range []string{"PORT", "HOST", "GEMINI_API_KEY", "GEMINI_PROXY_URL", "HTTPS_PROXY", "HTTP_PROXY", "ANALYSIS_MODE", "GEMINI_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr())
	assert.Equal(t, ModeRemote, cfg.Analysis.Mode)
	assert.Equal(t, FallbackLocal, cfg.Analysis.Fallback)
	assert.Equal(t, "flat", cfg.Analysis.ResponseFormat)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.False(t, cfg.Gemini.ProxyEnabled)
	assert.Equal(t, "http://127.0.0.1:4780", cfg.Gemini.ProxyURL)
	assert.Empty(t, cfg.Gemini.Endpoint)
	assert.False(t, cfg.Gemini.HasCredential())
}

func TestLoad_Environment(t *testing.T) {
	inTempDir(t)
	t.Setenv("PORT", "8088")
	t.Setenv("GEMINI_API_KEY", "  abc123  ")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("GEMINI_PROXY_ENABLED", "true")
	t.Setenv("HTTPS_PROXY", "http://proxy.local:8080")
	t.Setenv("ANALYSIS_MODE", "Quick")
	t.Setenv("ANALYSIS_RESPONSE_FORMAT", "envelope")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_ENDPOINT", "http://127.0.0.1:9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, "abc123", cfg.Gemini.APIKey)
	assert.True(t, cfg.Gemini.HasCredential())
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.True(t, cfg.Gemini.ProxyEnabled)
	assert.Equal(t, "http://proxy.local:8080", cfg.Gemini.ProxyURL)
	assert.Equal(t, ModeQuick, cfg.Analysis.Mode)
	assert.Equal(t, "envelope", cfg.Analysis.ResponseFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://127.0.0.1:9090", cfg.Gemini.Endpoint)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_MODEL=from-file\nANALYSIS_FALLBACK=placeholder\n"), 0o600))
	t.Setenv("GEMINI_MODEL", "from-env")
	// Registered so the value set by godotenv is cleared afterwards.
	t.Setenv("ANALYSIS_FALLBACK", "")
	require.NoError(t, os.Unsetenv("ANALYSIS_FALLBACK"))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.Model)
	assert.Equal(t, FallbackPlaceholder, cfg.Analysis.Fallback)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "persona.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\nanalysis:\n  mode: local\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ModeLocal, cfg.Analysis.Mode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	inTempDir(t)
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "3000"},
			Log:      LogConfig{Level: "info", Format: "json"},
			Analysis: AnalysisConfig{Mode: ModeRemote, Fallback: FallbackLocal, ResponseFormat: "flat"},
			Gemini:   GeminiConfig{Timeout: time.Second},
		}
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"unknown mode", func(c *Config) { c.Analysis.Mode = "batch" }},
		{"unknown fallback", func(c *Config) { c.Analysis.Fallback = "none" }},
		{"unknown format", func(c *Config) { c.Analysis.ResponseFormat = "xml" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "text" }},
		{"zero timeout", func(c *Config) { c.Gemini.Timeout = 0 }},
		{"proxy without url", func(c *Config) {
			c.Gemini.ProxyEnabled = true
			c.Gemini.ProxyURL = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestHasCredential(t *testing.T) {
	assert.False(t, GeminiConfig{}.HasCredential())
	assert.False(t, GeminiConfig{APIKey: "your_gemini_api_key_here"}.HasCredential())
	assert.True(t, GeminiConfig{APIKey: "real"}.HasCredential())
}
