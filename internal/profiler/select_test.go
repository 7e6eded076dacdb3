package profiler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func selectConfig(mode, apiKey, endpoint string) *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{Mode: mode, Fallback: config.FallbackLocal},
		Gemini: config.GeminiConfig{
			APIKey:   apiKey,
			Endpoint: endpoint,
			Model:    "gemini-2.5-flash",
			Timeout:  5 * time.Second,
		},
	}
}

func TestNewAnalyzerForConfig(t *testing.T) {
	fake := &fakeGemini{body: `{"candidates":[]}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	tests := []struct {
		name       string
		cfg        *config.Config
		wantType   any
		wantRemote bool
	}{
		{
			name:     "quick mode",
			cfg:      selectConfig(config.ModeQuick, "real-key", srv.URL),
			wantType: &analysis.QuickAnalyzer{},
		},
		{
			name:     "local mode",
			cfg:      selectConfig(config.ModeLocal, "real-key", srv.URL),
			wantType: &analysis.Analyzer{},
		},
		{
			name:     "remote without key",
			cfg:      selectConfig(config.ModeRemote, "", srv.URL),
			wantType: &Gateway{},
		},
		{
			name:     "remote with sample key",
			cfg:      selectConfig(config.ModeRemote, "your_gemini_api_key_here", srv.URL),
			wantType: &Gateway{},
		},
		{
			name:       "remote with key",
			cfg:        selectConfig(config.ModeRemote, "real-key", srv.URL),
			wantType:   &Gateway{},
			wantRemote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, closeFn, err := NewAnalyzerForConfig(context.Background(), tt.cfg, nil, nil)
			require.NoError(t, err)
			require.NotNil(t, closeFn)
			defer closeFn()

			assert.IsType(t, tt.wantType, a)
			if gw, ok := a.(*Gateway); ok {
				if tt.wantRemote {
					assert.NotNil(t, gw.remote)
				} else {
					assert.Nil(t, gw.remote)
				}
			}
		})
	}
	assert.Zero(t, fake.requests(), "building an analyzer makes no calls")
}

func TestNewAnalyzerForConfig_NoCredentialMakesNoRemoteCall(t *testing.T) {
	fake := &fakeGemini{body: `{"candidates":[{"content":{"parts":[{"text":"{\"persona\":{}}"}]}}]}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	a, closeFn, err := NewAnalyzerForConfig(context.Background(), selectConfig(config.ModeRemote, "", srv.URL), zap.New(core), nil)
	require.NoError(t, err)
	defer closeFn()

	result, err := a.Analyze(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceLocal, result.Source)
	assert.Zero(t, fake.requests())
	assert.Equal(t, 1, logs.FilterMessage("GEMINI_API_KEY not configured, every request uses the fallback").Len())
}

func TestNewAnalyzerForConfig_RemoteCallsEndpoint(t *testing.T) {
	fake := &fakeGemini{body: `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"persona\":{\"name\":\"From Remote\"}}"}]}}]}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a, closeFn, err := NewAnalyzerForConfig(context.Background(), selectConfig(config.ModeRemote, "real-key", srv.URL), nil, nil)
	require.NoError(t, err)
	defer closeFn()

	result, err := a.Analyze(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRemote, result.Source)
	require.Equal(t, 1, fake.requests())
	assert.Equal(t, "real-key", fake.keys[0])
}
