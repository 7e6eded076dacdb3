package profiler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/config"
	"github.com/BerylCAtieno/interview-persona/internal/logger"
	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"go.uber.org/zap"
)

// Failure reasons recorded when the remote path falls back.
const (
	ReasonTimeout        = "timeout"
	ReasonEmptyResponse  = "empty_response"
	ReasonMalformedJSON  = "malformed_json"
	ReasonMissingPersona = "missing_persona"
	ReasonRequestFailed  = "request_failed"
)

type GatewayOptions struct {
	// Fallback is config.FallbackLocal or config.FallbackPlaceholder.
	Fallback string
	// Timeout bounds a single remote call. Zero means only the request
	// context applies.
	Timeout time.Duration
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Gateway tries the remote model once and falls back to a local result on
// any failure. Callers never see remote errors.
type Gateway struct {
	remote   Generator
	local    *analysis.Analyzer
	fallback string
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewGateway builds a gateway. A nil remote disables the remote attempt
// entirely, which is how a missing credential is expressed.
func NewGateway(remote Generator, local *analysis.Analyzer, opts GatewayOptions) *Gateway {
	if local == nil {
		local = analysis.NewAnalyzer(nil)
	}
	fallback := opts.Fallback
	if fallback == "" {
		fallback = config.FallbackLocal
	}
	return &Gateway{
		remote:   remote,
		local:    local,
		fallback: fallback,
		timeout:  opts.Timeout,
		logger:   logger.OrNop(opts.Logger),
		metrics:  opts.Metrics,
	}
}

func (g *Gateway) Analyze(ctx context.Context, transcript string) (*analysis.Analysis, error) {
	if g.remote == nil {
		g.logger.Debug("no remote credential, using fallback", zap.String("fallback", g.fallback))
		return g.fallbackAnalysis(ctx, transcript)
	}

	payload, err := g.attemptRemote(ctx, transcript)
	if err == nil {
		return &analysis.Analysis{Source: analysis.SourceRemote, Payload: payload}, nil
	}

	reason := failureReason(err)
	g.metrics.ObserveRemoteFailure(reason)
	g.logger.Warn("remote analysis failed, falling back",
		zap.String("reason", reason),
		zap.String("fallback", g.fallback),
		zap.Error(err),
	)

	return g.fallbackAnalysis(ctx, transcript)
}

func (g *Gateway) attemptRemote(ctx context.Context, transcript string) (map[string]any, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	content, err := g.remote.Generate(ctx, BuildPrompt(transcript))
	if err != nil {
		return nil, fmt.Errorf("remote generate: %w", err)
	}

	return ParseResult(content)
}

func (g *Gateway) fallbackAnalysis(ctx context.Context, transcript string) (*analysis.Analysis, error) {
	if g.fallback == config.FallbackPlaceholder {
		return &analysis.Analysis{Source: analysis.SourcePlaceholder, Payload: analysis.Placeholder()}, nil
	}
	return g.local.Analyze(ctx, transcript)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, ErrMalformedJSON):
		return ReasonMalformedJSON
	case errors.Is(err, ErrMissingPersona):
		return ReasonMissingPersona
	default:
		return ReasonRequestFailed
	}
}
