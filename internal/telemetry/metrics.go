package telemetry

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus instruments the CLI records while
// parsing, validating and generating messages. Narrowed from the
// teacher's internal/observability/metrics.go, which registered HTTP,
// database, Redis, WebSocket and NATS metrics for a live gateway
// service — none of which have a counterpart once the core is a pure,
// offline codec. Registered against a private *prometheus.Registry
// (never the global default, and never served over HTTP by this
// package) so the "no networking" scope holds even though
// prometheus/client_golang itself is still exercised.
type Metrics struct {
	Registry *prometheus.Registry

	MessagesParsedTotal     *prometheus.CounterVec
	MessagesEmittedTotal    *prometheus.CounterVec
	ParseErrorsTotal        *prometheus.CounterVec
	ValidationRunsTotal     *prometheus.CounterVec
	ValidationErrorsTotal   *prometheus.CounterVec
	ParseDurationSeconds    prometheus.Histogram
	ValidateDurationSeconds prometheus.Histogram
}

// NewMetrics builds a fresh registry and registers every counter and
// histogram against it.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		MessagesParsedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_parsed_total",
				Help:      "Total number of MT messages successfully parsed, by message type.",
			},
			[]string{"message_type"},
		),
		MessagesEmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_emitted_total",
				Help:      "Total number of MT messages rendered back to wire text, by message type.",
			},
			[]string{"message_type"},
		),
		ParseErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_errors_total",
				Help:      "Total number of parse failures, by error kind.",
			},
			[]string{"kind"},
		),
		ValidationRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_runs_total",
				Help:      "Total number of network validation rule runs, by message type.",
			},
			[]string{"message_type"},
		),
		ValidationErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of network validation rule violations, by rule code.",
			},
			[]string{"code"},
		),
		ParseDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "parse_duration_seconds",
				Help:      "Time spent parsing a single message.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ValidateDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validate_duration_seconds",
				Help:      "Time spent running network validation rules on a single message.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// WriteText dumps every registered metric in Prometheus's plain text
// exposition format to w. No HTTP listener is ever started; this is
// the only way the counters leave the process, preserving the "no
// networking" scope. The CLI has no flag that calls it.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
