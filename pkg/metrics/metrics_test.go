package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpaca-ollama/pkg/metrics"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New(metrics.Config{Namespace: "test"})

	m.ObserveRequest("embed", "ok", 20*time.Millisecond)
	m.ObserveRequest("embed", "ok", 30*time.Millisecond)
	m.ObserveRequest("chat", "timeout", 70*time.Second)

	expected := `
# HELP test_ollama_requests_total Calls to the inference server by endpoint and outcome.
# TYPE test_ollama_requests_total counter
test_ollama_requests_total{endpoint="chat",outcome="timeout"} 1
test_ollama_requests_total{endpoint="embed",outcome="ok"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "test_ollama_requests_total"))

	count, err := testutil.GatherAndCount(m.Registry, "test_ollama_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_ObserveComparison(t *testing.T) {
	m := metrics.New(metrics.Config{})

	m.ObserveComparison("scored")
	m.ObserveComparison("scored")
	m.ObserveComparison("failed")

	expected := `
# HELP alpaca_similarity_comparisons_total Candidate comparisons by outcome.
# TYPE alpaca_similarity_comparisons_total counter
alpaca_similarity_comparisons_total{outcome="failed"} 1
alpaca_similarity_comparisons_total{outcome="scored"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "alpaca_similarity_comparisons_total"))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(metrics.Config{Namespace: "alpaca", EnableDefaultCollectors: true})
	m.ObserveComparison("mismatch")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `alpaca_similarity_comparisons_total{outcome="mismatch"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
