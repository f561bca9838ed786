package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vmunix/reelcat/internal/catalog"
)

// Metrics holds the Prometheus collectors for the daemon.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	views    *prometheus.CounterVec
	noMatch  prometheus.Counter
	films    prometheus.Gauge
	chars    prometheus.Gauge
}

// NewMetrics creates collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reelcat",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reelcat",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		views: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reelcat",
			Name:      "views_total",
			Help:      "Catalog views rendered by sort key and whether a character filter was active.",
		}, []string{"sort", "filtered"}),
		noMatch: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reelcat",
			Name:      "filter_no_match_total",
			Help:      "Character filters that matched no films.",
		}),
		films: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reelcat",
			Name:      "catalog_films",
			Help:      "Films in the loaded dataset.",
		}),
		chars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reelcat",
			Name:      "catalog_characters",
			Help:      "Distinct characters in the loaded dataset.",
		}),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.views, m.noMatch, m.films, m.chars,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetCatalog records the size of the loaded dataset.
func (m *Metrics) SetCatalog(films, characters int) {
	if m == nil {
		return
	}
	m.films.Set(float64(films))
	m.chars.Set(float64(characters))
}

// ObserveView counts a rendered view.
func (m *Metrics) ObserveView(v *catalog.View) {
	if m == nil {
		return
	}
	sort := string(v.SortKey())
	if sort == "" {
		sort = "none"
	}
	m.views.WithLabelValues(sort, strconv.FormatBool(v.Filtered())).Inc()
	if v.Filtered() && v.Visible() == 0 {
		m.noMatch.Inc()
	}
}

// Instrument records request counts and latency for next.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := routeLabel(r.URL.Path)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel maps a request path onto a bounded set of label values.
func routeLabel(path string) string {
	switch {
	case path == "/":
		return "index"
	case path == "/health":
		return "health"
	case strings.HasPrefix(path, "/api/v1/"):
		switch path {
		case "/api/v1/films", "/api/v1/characters", "/api/v1/status":
			return strings.TrimPrefix(path, "/api/v1/")
		}
		return "api_other"
	default:
		return "other"
	}
}
