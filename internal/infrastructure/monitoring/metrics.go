package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Command metrics
	CommandCalls    *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	CommandErrors   *prometheus.CounterVec

	// Archive metrics
	ArchiveEntries *prometheus.CounterVec
	ArchiveBytes   prometheus.Counter

	// Template metrics
	TemplatesSeeded prometheus.Counter
	TemplatesStored prometheus.Gauge

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for the health endpoint
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalDuration float64 `json:"total_duration_seconds"`
	CommandCalls  int64   `json:"command_calls"`
	CommandErrors int64   `json:"command_errors"`
}

// NewMetrics creates a new metrics collector with its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	m := &Metrics{
		Registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fa_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fa_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fa_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fa_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		CommandCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fa_command_calls_total",
				Help: "Total number of command invocations",
			},
			[]string{"service", "command", "status"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fa_command_duration_seconds",
				Help:    "Command duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"service", "command"},
		),
		CommandErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fa_command_errors_total",
				Help: "Total number of failed commands by error kind",
			},
			[]string{"service", "command", "kind"},
		),

		ArchiveEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fa_archive_entries_total",
				Help: "Archive entries materialized, by type",
			},
			[]string{"type"},
		),
		ArchiveBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fa_archive_bytes_total",
				Help: "Decompressed bytes written by archive extraction",
			},
		),

		TemplatesSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fa_templates_seeded_total",
				Help: "Default templates written by first-run seeding",
			},
		),
		TemplatesStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fa_templates_stored",
				Help: "Templates found by the last listing",
			},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "fa_uptime_seconds",
			Help: "Backend uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordCommand records a command invocation
func (m *Metrics) RecordCommand(service, command, status string, duration time.Duration) {
	m.CommandCalls.WithLabelValues(service, command, status).Inc()
	m.CommandDuration.WithLabelValues(service, command).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.CommandCalls++
	m.mu.Unlock()
}

// RecordCommandError records a failed command by error kind
func (m *Metrics) RecordCommandError(service, command, kind string) {
	m.CommandErrors.WithLabelValues(service, command, kind).Inc()

	m.mu.Lock()
	m.snapshot.CommandErrors++
	m.mu.Unlock()
}

// RecordExtraction records the outcome of one archive extraction
func (m *Metrics) RecordExtraction(files, directories int, bytes int64) {
	m.ArchiveEntries.WithLabelValues("file").Add(float64(files))
	m.ArchiveEntries.WithLabelValues("directory").Add(float64(directories))
	m.ArchiveBytes.Add(float64(bytes))
}

// AddTemplatesSeeded counts default templates written by seeding
func (m *Metrics) AddTemplatesSeeded(count int) {
	m.TemplatesSeeded.Add(float64(count))
}

// SetTemplatesStored sets the number of templates last listed
func (m *Metrics) SetTemplatesStored(count int) {
	m.TemplatesStored.Set(float64(count))
}

// Snapshot returns a copy of the running totals
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// UptimeSeconds returns seconds since the collector was created
func (m *Metrics) UptimeSeconds() float64 {
	return time.Since(m.startTime).Seconds()
}
