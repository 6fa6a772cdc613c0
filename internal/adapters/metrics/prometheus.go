// Package metrics exposes Prometheus collectors on a private registry.
package metrics

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeOps        *prometheus.CounterVec
	analytics       *prometheus.HistogramVec
	milestones      prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preference_store_operations_total",
		Help: "Preference store operations by kind and outcome",
	}, []string{"op", "outcome"})

	analytics := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_compute_seconds",
		Help:    "Time spent loading a snapshot and computing an analytics view",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"view"})

	milestones := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "milestones_unlocked_total",
		Help: "Streak milestones recorded by the milestone worker",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeOps, analytics, milestones, goroutines)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeOps:        storeOps,
		analytics:       analytics,
		milestones:      milestones,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, took time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(took.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *Metrics) ObserveStore(op, outcome string) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) ObserveAnalytics(view string, took time.Duration) {
	if m == nil {
		return
	}
	m.analytics.WithLabelValues(view).Observe(took.Seconds())
}

func (m *Metrics) MilestoneUnlocked() {
	if m == nil {
		return
	}
	m.milestones.Inc()
}

// GinMiddleware records every request under its route template, so
// /habits/:name stays a single series.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
