// Package metrics holds the Prometheus instruments of the document service.
package metrics

import (
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Stamp load outcomes.
const (
	StampApplied  = "applied"
	StampStale    = "stale"
	StampRejected = "rejected"
	StampCleared  = "cleared"
)

// Metrics groups the service instruments.
type Metrics struct {
	documentsGenerated *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	stampLoads         *prometheus.CounterVec
	rpcDuration        *prometheus.HistogramVec
}

// New creates the instruments and registers them with registerer
// (prometheus.DefaultRegisterer when nil).
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		documentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docwiser_documents_generated_total",
			Help: "Documents generated by document type and whether they were stored.",
		}, []string{"doc_type", "persisted"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docwiser_validation_failures_total",
			Help: "Rejected inputs by field.",
		}, []string{"field"}),
		stampLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docwiser_stamp_loads_total",
			Help: "Stamp image requests by outcome.",
		}, []string{"outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docwiser_rpc_duration_seconds",
			Help:    "RPC latency by procedure and code.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"procedure", "code"}),
	}
	registerer.MustRegister(m.documentsGenerated, m.validationFailures, m.stampLoads, m.rpcDuration)
	return m
}

// DocumentGenerated counts one generated document.
func (m *Metrics) DocumentGenerated(docType string, persisted bool) {
	if m == nil {
		return
	}
	label := "false"
	if persisted {
		label = "true"
	}
	m.documentsGenerated.WithLabelValues(docType, label).Inc()
}

// ValidationFailed counts one rejected input.
func (m *Metrics) ValidationFailed(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// StampLoad counts one stamp request outcome.
func (m *Metrics) StampLoad(outcome string) {
	if m == nil {
		return
	}
	m.stampLoads.WithLabelValues(outcome).Inc()
}

// ObserveRPC records the latency of one call. A nil error is recorded as "ok".
func (m *Metrics) ObserveRPC(procedure string, err error, d time.Duration) {
	if m == nil {
		return
	}
	code := "ok"
	if err != nil {
		code = connect.CodeUnknown.String()
		var connectErr *connect.Error
		if errors.As(err, &connectErr) {
			code = connectErr.Code().String()
		}
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
