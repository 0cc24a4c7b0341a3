package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache lookups by cache name and outcome (hit or miss)",
		},
		[]string{"cache", "outcome"},
	)

	llmRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "LLM requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups)
	prometheus.MustRegister(llmRequests)
}

// CacheLookup records a cache lookup outcome ("hit" or "miss").
func CacheLookup(cache, outcome string) {
	cacheLookups.WithLabelValues(cache, outcome).Inc()
}

// LLMRequest records an LLM call outcome ("ok" or "error").
func LLMRequest(operation, outcome string) {
	llmRequests.WithLabelValues(operation, outcome).Inc()
}
