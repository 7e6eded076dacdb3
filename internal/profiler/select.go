package profiler

import (
	"context"

	"github.com/BerylCAtieno/interview-persona/internal/analysis"
	"github.com/BerylCAtieno/interview-persona/internal/config"
	"github.com/BerylCAtieno/interview-persona/internal/logger"
	"github.com/BerylCAtieno/interview-persona/internal/metrics"
	"go.uber.org/zap"
)

// Analyzer turns a transcript into a tagged analysis.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*analysis.Analysis, error)
}

// NewAnalyzerForConfig selects the analysis path for the configured mode.
// Remote mode only creates a Gemini client when a real credential is set;
// otherwise the gateway has no remote and always falls back. The returned
// func releases the client, if one was created.
func NewAnalyzerForConfig(ctx context.Context, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (Analyzer, func(), error) {
	log = logger.OrNop(log)
	noop := func() {}

	switch cfg.Analysis.Mode {
	case config.ModeQuick:
		return analysis.NewQuickAnalyzer(), noop, nil
	case config.ModeLocal:
		return analysis.NewAnalyzer(nil), noop, nil
	}

	var remote Generator
	closeFn := noop

	if cfg.Gemini.HasCredential() {
		client, err := NewGeminiClient(ctx, cfg.Gemini)
		if err != nil {
			return nil, nil, err
		}
		remote = client
		closeFn = client.Close
		log.Info("Remote analysis enabled",
			zap.String("model", cfg.Gemini.Model),
			zap.Bool("proxy", cfg.Gemini.ProxyEnabled),
			zap.Duration("timeout", cfg.Gemini.Timeout),
		)
	} else {
		log.Warn("GEMINI_API_KEY not configured, every request uses the fallback",
			zap.String("fallback", cfg.Analysis.Fallback),
		)
	}

	gw := NewGateway(remote, analysis.NewAnalyzer(nil), GatewayOptions{
		Fallback: cfg.Analysis.Fallback,
		Timeout:  cfg.Gemini.Timeout,
		Logger:   log,
		Metrics:  m,
	})
	return gw, closeFn, nil
}
