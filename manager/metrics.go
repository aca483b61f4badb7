package manager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fileOpTotal counts loads, saves and reloads by result
	fileOpTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keepconf_file_op_total",
		Help: "Total file operations by operation and result",
	}, []string{"op", "result"})

	fileOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "keepconf_file_op_duration_seconds",
		Help:    "File operation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"op"})
)

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	fileOpTotal.WithLabelValues(op, result).Inc()
	fileOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
