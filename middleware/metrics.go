package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// propagationTotal tracks inbound trace header extractions
	propagationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traceline_propagation_headers_total",
			Help: "Total number of inbound trace header extractions by outcome",
		},
		[]string{"transport", "outcome"},
	)
)

// RecordPropagation records a trace header extraction outcome for a
// transport ("http", "fiber", "grpc").
func RecordPropagation(transport, outcome string) {
	propagationTotal.WithLabelValues(transport, outcome).Inc()
}
