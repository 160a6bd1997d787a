// Package metrics provides Prometheus metrics for the legends service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the legends service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Roster metrics
	legendsServed      *prometheus.CounterVec
	heightConversions  *prometheus.CounterVec
	teamResolutions    prometheus.Counter
	unresolvedTeams    prometheus.Counter
	rosterBuildLatency *prometheus.HistogramVec
	fixturePlayers     prometheus.Gauge
	fixtureTeams       prometheus.Gauge
	fixtureLoads       *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var mu sync.RWMutex

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics manager

// Custom registry to keep the default Go collectors out of /healthz.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "legends",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// SetDefault replaces the manager used by the package-level helpers.
func SetDefault(m *Manager) error {
	if m == nil {
		return ErrNotInitialized
	}
	mu.Lock()
	globalManager = m
	mu.Unlock()
	return nil
}

// Default returns the manager used by the package-level helpers.
func Default() *Manager {
	mu.RLock()
	defer mu.RUnlock()
	return globalManager
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.legendsServed = auto.NewCounterVec(
		m.counterOpts("legends_served_total", "Total number of player records served"),
		[]string{"version", "unit"},
	)
	m.heightConversions = auto.NewCounterVec(
		m.counterOpts("height_conversions_total", "Total number of imperial to metric height conversions"),
		[]string{"version"},
	)
	m.teamResolutions = auto.NewCounter(
		m.counterOpts("team_resolutions_total", "Total number of team id lookups"),
	)
	m.unresolvedTeams = auto.NewCounter(
		m.counterOpts("unresolved_teams_total", "Total number of team ids that did not resolve to a team"),
	)
	m.rosterBuildLatency = auto.NewHistogramVec(
		m.histogramOpts("roster_build_latency_milliseconds", "Time spent assembling the roster", m.histogramBuckets),
		[]string{"version"},
	)
	m.fixturePlayers = auto.NewGauge(
		m.gaugeOpts("fixture_players", "Number of players in the loaded fixture"),
	)
	m.fixtureTeams = auto.NewGauge(
		m.gaugeOpts("fixture_teams", "Number of teams in the loaded fixture"),
	)
	m.fixtureLoads = auto.NewCounterVec(
		m.counterOpts("fixture_loads_total", "Number of fixture loads by origin"),
		[]string{"origin"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that resulted in errors", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(
		m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"),
	)
	m.systemGoroutineCount = auto.NewGauge(
		m.gaugeOpts("system_goroutine_count", "Number of goroutines"),
	)
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// active returns the global manager when recording is enabled.
func active() (*Manager, bool) {
	m := Default()
	if m == nil || !m.enabled {
		return nil, false
	}
	return m, true
}

// Roster Metrics Functions.

// RecordLegendsServed adds count served player records for version and unit.
func RecordLegendsServed(version, unit string, count int) {
	if m, ok := active(); ok {
		m.legendsServed.WithLabelValues(version, unit).Add(float64(count))
	}
}

// RecordHeightConversion increments the conversion counter for version.
func RecordHeightConversion(version string) {
	if m, ok := active(); ok {
		m.heightConversions.WithLabelValues(version).Inc()
	}
}

// RecordTeamResolution increments the team lookup counter.
func RecordTeamResolution() {
	if m, ok := active(); ok {
		m.teamResolutions.Inc()
	}
}

// RecordUnresolvedTeam increments the failed team lookup counter.
func RecordUnresolvedTeam() {
	if m, ok := active(); ok {
		m.unresolvedTeams.Inc()
	}
}

// RecordRosterBuildLatency records roster assembly time in milliseconds.
func RecordRosterBuildLatency(version string, latencyMs float64) {
	if m, ok := active(); ok {
		m.rosterBuildLatency.WithLabelValues(version).Observe(latencyMs)
	}
}

// UpdateFixtureSize sets the fixture player and team gauges.
func UpdateFixtureSize(players, teams int) {
	if m, ok := active(); ok {
		m.fixturePlayers.Set(float64(players))
		m.fixtureTeams.Set(float64(teams))
	}
}

// RecordFixtureLoad counts a fixture load from origin ("builtin" or "file").
func RecordFixtureLoad(origin string) {
	if m, ok := active(); ok {
		m.fixtureLoads.WithLabelValues(origin).Inc()
	}
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if m, ok := active(); ok {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if m, ok := active(); ok {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

// Error Metrics Functions.

// RecordErrorByComponent records an error by component and type.
func RecordErrorByComponent(component, errorType string) {
	if m, ok := active(); ok {
		m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	if m, ok := active(); ok {
		m.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

// RecordErrorByEndpoint records an error by endpoint, method, and type.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if m, ok := active(); ok {
		m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorLatency records latency for operations that resulted in errors.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if m, ok := active(); ok {
		m.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
	}
}

// System Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	if m, ok := active(); ok {
		m.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if m, ok := active(); ok {
		m.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	if m, ok := active(); ok {
		m.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
