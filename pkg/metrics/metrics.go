package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Holiday refresh outcomes recorded on the refresh counter.
const (
	RefreshSuccess = "success"
	RefreshFailure = "failure"
	RefreshStale   = "stale"
)

// Registry owns the prometheus collectors exposed on /metrics. It is an
// injectable component rather than a package-level default registry so tests
// can build isolated instances.
type Registry struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	HolidayRefresh  *prometheus.CounterVec
	CachedHolidays  prometheus.Gauge
}

// New builds a registry with all service collectors registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request latency by route and status.",
			},
			[]string{"route", "status"},
		),
		HolidayRefresh: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holiday_refresh_total",
				Help: "Holiday cache refresh attempts by outcome.",
			},
			[]string{"outcome"},
		),
		CachedHolidays: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "holidays_cached",
				Help: "Number of holiday dates currently cached.",
			},
		),
	}
	reg.MustRegister(r.RequestDuration, r.HolidayRefresh, r.CachedHolidays)
	return r
}

// Handler exposes the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
