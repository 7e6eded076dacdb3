package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors the server records. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Requests       *prometheus.CounterVec
	Analyses       *prometheus.CounterVec
	RemoteFailures *prometheus.CounterVec
	AnalysisTime   *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persona_http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		Analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persona_analyses_total",
				Help: "Completed analyses by the path that produced them",
			},
			[]string{"source"},
		),
		RemoteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persona_remote_failures_total",
				Help: "Remote model calls that fell back to the local path, by reason",
			},
			[]string{"reason"},
		),
		AnalysisTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "persona_analysis_duration_seconds",
				Help:    "Time spent producing an analysis",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"source"},
		),
	}
}

func (m *Metrics) ObserveRequest(route, method, status string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, status).Inc()
}

func (m *Metrics) ObserveAnalysis(source string, seconds float64) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(source).Inc()
	m.AnalysisTime.WithLabelValues(source).Observe(seconds)
}

func (m *Metrics) ObserveRemoteFailure(reason string) {
	if m == nil {
		return
	}
	m.RemoteFailures.WithLabelValues(reason).Inc()
}
