// ABOUTME: Prometheus implementation of the search metrics interface
// ABOUTME: Counts searches by outcome and records discovery tool run durations

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements the Metrics interface with prometheus collectors
type Recorder struct {
	gatherer prometheus.Gatherer

	searches    *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	links       prometheus.Counter
	inFlight    prometheus.Gauge
}

// NewRecorder registers the search collectors on a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewRecorderWithRegistry(reg, reg)
}

// NewRecorderWithRegistry registers the search collectors on reg
func NewRecorderWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: gatherer,
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_search_requests_total",
				Help: "Total number of profile searches by outcome",
			},
			[]string{"outcome"},
		),
		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "profile_search_tool_duration_seconds",
				Help:    "Duration of discovery tool runs in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
			},
			[]string{"exit_code"},
		),
		links: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "profile_search_links_found_total",
				Help: "Total number of profile links returned",
			},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "profile_search_tool_in_flight",
				Help: "Number of discovery tool processes currently running",
			},
		),
	}
}

// SearchFinished counts one search with the given outcome
func (r *Recorder) SearchFinished(outcome string) {
	r.searches.WithLabelValues(outcome).Inc()
}

// ToolRunObserved records a finished tool run
func (r *Recorder) ToolRunObserved(duration time.Duration, exitCode int) {
	r.runDuration.WithLabelValues(strconv.Itoa(exitCode)).Observe(duration.Seconds())
}

// LinksFound adds n discovered links
func (r *Recorder) LinksFound(n int) {
	r.links.Add(float64(n))
}

// InFlight adjusts the running process gauge
func (r *Recorder) InFlight(delta int) {
	r.inFlight.Add(float64(delta))
}

// Handler exposes the collected metrics in the prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
