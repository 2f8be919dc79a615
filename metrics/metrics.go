// Package metrics holds the Prometheus collectors of the parser.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Label values.
const (
	LblEntry  = "entry"
	LblResult = "result"
	LblKind   = "kind"

	LblOK    = "ok"
	LblError = "error"
)

// Metrics
var (
	ParseCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparksql",
			Subsystem: "parser",
			Name:      "parse_total",
			Help:      "Counter of parse calls by entry point and result.",
		}, []string{LblEntry, LblResult})

	ParseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sparksql",
			Subsystem: "parser",
			Name:      "parse_duration_seconds",
			Help:      "Bucketed histogram of parse time (s) by entry point.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 20), // 10us ~ 5s
		}, []string{LblEntry})

	DiagnosticCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparksql",
			Subsystem: "parser",
			Name:      "diagnostics_total",
			Help:      "Counter of recoverable diagnostics attached to parsed nodes.",
		}, []string{LblKind})
)

var registerOnce sync.Once

// Register registers the collectors with the default registerer. It is
// safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		RegisterTo(prometheus.DefaultRegisterer)
	})
}

// RegisterTo registers the collectors with r.
func RegisterTo(r prometheus.Registerer) {
	r.MustRegister(ParseCounter)
	r.MustRegister(ParseDuration)
	r.MustRegister(DiagnosticCounter)
}

// RetLabel returns the result label of err.
func RetLabel(err error) string {
	if err == nil {
		return LblOK
	}
	return LblError
}
