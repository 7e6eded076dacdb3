package profiler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/config"
	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"github.com/BerylCAtieno/interview-persona/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeGenerator struct {
	content string
	err     error
	delay   time.Duration
	calls   int
	prompt  string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.content, f.err
}

const transcript = "I am so frustrated with the checkout, it's too slow. 'This is terrible' she said."

func TestGateway_RemoteSuccess(t *testing.T) {
	gen := &fakeGenerator{content: "```json\n{\"persona\":{\"name\":\"Remote Persona\"}}\n```"}
	gw := NewGateway(gen, nil, GatewayOptions{})

	a, err := gw.Analyze(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRemote, a.Source)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompt, transcript)

	payload := a.Payload.(map[string]any)
	assert.Equal(t, "Remote Persona", payload["persona"].(map[string]any)["name"])
}

func TestGateway_NoRemoteNeverCallsOut(t *testing.T) {
	gw := NewGateway(nil, analysis.NewAnalyzer(nil), GatewayOptions{})

	a, err := gw.Analyze(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceLocal, a.Source)

	result := a.Payload.(*models.AnalysisResult)
	assert.Equal(t, "This is terrible", result.KeyQuotes[0].Quote)
}

func TestGateway_FallbackReasons(t *testing.T) {
	tests := []struct {
		name   string
		gen    *fakeGenerator
		reason string
	}{
		{"request error", &fakeGenerator{err: errors.New("connection refused")}, ReasonRequestFailed},
		{"empty response", &fakeGenerator{err: ErrEmptyResponse}, ReasonEmptyResponse},
		{"malformed json", &fakeGenerator{content: "not json at all"}, ReasonMalformedJSON},
		{"missing persona", &fakeGenerator{content: `{"userProblems":[]}`}, ReasonMissingPersona},
		{"timeout", &fakeGenerator{delay: time.Second}, ReasonTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			m := metrics.New(reg)
			core, logs := observer.New(zapcore.WarnLevel)

			gw := NewGateway(tt.gen, analysis.NewAnalyzer(nil), GatewayOptions{
				Timeout: 20 * time.Millisecond,
				Logger:  zap.New(core),
				Metrics: m,
			})

			a, err := gw.Analyze(context.Background(), transcript)
			require.NoError(t, err)
			assert.Equal(t, analysis.SourceLocal, a.Source)
			assert.Equal(t, 1, tt.gen.calls, "no retries")

			assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteFailures.WithLabelValues(tt.reason)))
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.reason, entry.ContextMap()["reason"])
			assert.NotContains(t, entry.Message, "terrible", "transcript is not logged")
		})
	}
}

func TestGateway_PlaceholderFallback(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	gw := NewGateway(gen, nil, GatewayOptions{Fallback: config.FallbackPlaceholder})

	a, err := gw.Analyze(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourcePlaceholder, a.Source)
	assert.Equal(t, "Analysis Pending", a.Payload.(*models.AnalysisResult).Persona.Name)
}

func TestGateway_CanceledRequestStillAnswers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &fakeGenerator{delay: time.Second}
	gw := NewGateway(gen, nil, GatewayOptions{})

	a, err := gw.Analyze(ctx, transcript)
	require.NoError(t, err)
	assert.Equal(t, analysis.SourceLocal, a.Source)
}

func TestFailureReason_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("outer"), context.DeadlineExceeded)
	assert.Equal(t, ReasonTimeout, failureReason(err))
	assert.Equal(t, ReasonMalformedJSON, failureReason(fmt.Errorf("parse: %w", ErrMalformedJSON)))
	assert.Equal(t, ReasonRequestFailed, failureReason(errors.New("status 503")))
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("hello there")
	assert.True(t, strings.Contains(p, "Interview Content:\nhello there\n"))
	assert.Contains(t, p, `"highLevelMotivations"`)
	assert.Contains(t, p, "Return ONLY valid JSON")
}
