package metrics

// DefaultNamespace prefixes every metric when Config.Namespace is empty.
const DefaultNamespace = "alpaca"

// Config controls the Prometheus registry owned by Metrics.
type Config struct {
	// Namespace becomes the metric name prefix, e.g. "alpaca" gives
	// alpaca_ollama_requests_total.
	Namespace string

	// EnableDefaultCollectors registers the Go runtime and process collectors.
	EnableDefaultCollectors bool
}
