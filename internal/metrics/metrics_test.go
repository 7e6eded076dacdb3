package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("/api/gemini", "POST", "200")
	m.ObserveAnalysis("local", 0.01)
	m.ObserveAnalysis("local", 0.02)
	m.ObserveRemoteFailure("timeout")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/api/gemini", "POST", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Analyses.WithLabelValues("local")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteFailures.WithLabelValues("timeout")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnalysisTime))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/", "GET", "200")
		m.ObserveAnalysis("local", 1)
		m.ObserveRemoteFailure("timeout")
	})
}
