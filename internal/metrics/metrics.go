package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Process outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeValidationError   = "validation_error"
	OutcomeGatewayError      = "gateway_error"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeError             = "error"
)

// Schedule statuses.
const (
	ScheduleScheduled = "scheduled"
	ScheduleSkipped   = "skipped"
	ScheduleFailed    = "failed"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Extraction
	ProcessTotal      *prometheus.CounterVec
	ProcessSeconds    *prometheus.HistogramVec
	ExtractedItems    *prometheus.CounterVec
	ScheduleTaskTotal *prometheus.CounterVec

	// HTTP
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, together with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the service collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ProcessTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syncnotes_process_total",
				Help: "Transcript processing requests by outcome",
			},
			[]string{"outcome"},
		),
		ProcessSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "syncnotes_process_seconds",
				Help:    "Transcript processing latency, model call included",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 15, 30, 60},
			},
			[]string{"outcome"},
		),
		ExtractedItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syncnotes_extracted_items_total",
				Help: "Decisions and tasks extracted from transcripts",
			},
			[]string{"kind"},
		),
		ScheduleTaskTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syncnotes_schedule_tasks_total",
				Help: "Tasks sent to calendar export by status",
			},
			[]string{"status"},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syncnotes_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "syncnotes_http_request_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordProcess records one Process call.
func (m *Metrics) RecordProcess(outcome string, seconds float64) {
	m.ProcessTotal.WithLabelValues(outcome).Inc()
	m.ProcessSeconds.WithLabelValues(outcome).Observe(seconds)
}

// RecordExtracted records the size of a successful extraction.
func (m *Metrics) RecordExtracted(decisions, tasks int) {
	m.ExtractedItems.WithLabelValues("decision").Add(float64(decisions))
	m.ExtractedItems.WithLabelValues("task").Add(float64(tasks))
}

// RecordSchedule records the outcome of a calendar export.
func (m *Metrics) RecordSchedule(scheduled, skipped, failed int) {
	m.ScheduleTaskTotal.WithLabelValues(ScheduleScheduled).Add(float64(scheduled))
	m.ScheduleTaskTotal.WithLabelValues(ScheduleSkipped).Add(float64(skipped))
	m.ScheduleTaskTotal.WithLabelValues(ScheduleFailed).Add(float64(failed))
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestSeconds.WithLabelValues(method, route).Observe(seconds)
}

// Handler returns the /metrics exposition handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
