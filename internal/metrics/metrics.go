// Package metrics exposes Prometheus collectors for the page server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "insurehub"

// Metrics reports view-state activity and render latency.
type Metrics struct {
	actions        *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// New registers the collectors with reg. sessions, when non-nil, is sampled
// for the live-session gauge. Registration errors panic, as with promauto.
func New(reg prometheus.Registerer, sessions func() int) *Metrics {
	actions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "viewstate",
			Name:      "actions_total",
			Help:      "View-state actions by type and outcome.",
		},
		[]string{"action", "result"},
	)
	renderDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Time spent rendering the page.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
	)

	reg.MustRegister(actions, renderDuration)
	if sessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "active",
				Help:      "Sessions currently held in the store.",
			},
			func() float64 { return float64(sessions()) },
		))
	}

	return &Metrics{actions: actions, renderDuration: renderDuration}
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ObserveAction counts one view-state action. A nil receiver is a no-op.
func (m *Metrics) ObserveAction(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.actions.WithLabelValues(action, result).Inc()
}

// ObserveRender records how long a page render took.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
