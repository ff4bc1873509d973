package inspector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for compileTotal.
const (
	resultOK            = "ok"
	resultCompilerError = "compiler_error"
	resultError         = "error"
)

var (
	compileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shaderinspector",
			Subsystem: "compile",
			Name:      "total",
			Help:      "Total number of shader compile attempts",
		},
		[]string{"compiler", "result"},
	)

	compileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shaderinspector",
			Subsystem: "compile",
			Name:      "duration_seconds",
			Help:      "Wall time of compiler invocations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"compiler"},
	)
)

func init() {
	prometheus.MustRegister(compileTotal, compileDuration)
}

func observeCompile(compiler, result string, start time.Time) {
	if compiler == "" {
		compiler = "unspecified"
	}
	compileTotal.WithLabelValues(compiler, result).Inc()
	if result != resultError {
		compileDuration.WithLabelValues(compiler).Observe(time.Since(start).Seconds())
	}
}
