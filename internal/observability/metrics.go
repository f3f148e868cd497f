package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bits",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bits",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	decodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bits",
			Subsystem: "decode",
			Name:      "total",
			Help:      "Decoded messages by metric and result code.",
		},
		[]string{"metric", "result"},
	)
	decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bits",
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Decode and analysis time in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"metric"},
	)
	decodePackets = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bits",
			Subsystem: "decode",
			Name:      "packets",
			Help:      "Packets per successfully decoded message.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, decodes, decodeDuration, decodePackets)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one decode. An empty code means success.
func RecordDecode(metric, code string, duration time.Duration, packets int) {
	RegisterMetrics()
	result := code
	if result == "" {
		result = "ok"
		decodePackets.Observe(float64(packets))
	}
	decodes.WithLabelValues(metric, result).Inc()
	decodeDuration.WithLabelValues(metric).Observe(duration.Seconds())
}
