package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one server. Each server owns
// its registry so tests can build servers side by side.
type Metrics struct {
	registry  *prometheus.Registry
	estimates *prometheus.CounterVec
	quotes    *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fabric_price",
			Name:      "estimates_total",
			Help:      "Price estimates by model and outcome.",
		}, []string{"model", "status"}),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fabric_price",
			Name:      "quote_lines_total",
			Help:      "Quote lines priced, by outcome.",
		}, []string{"status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fabric_price",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		m.estimates,
		m.quotes,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeEstimate(model string, err error) {
	if m == nil {
		return
	}
	m.estimates.WithLabelValues(model, outcome(err)).Inc()
}

func (m *Metrics) observeQuoteLine(err error) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) observeRequest(route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(route, strconv.Itoa(code)).Observe(d.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
