// Package metrics holds the Prometheus registry for the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics for the CMS API.
type Registry struct {
	reg *prometheus.Registry

	// HTTP surface
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Document store
	StoreOps *prometheus.CounterVec
}

// NewRegistry creates a registry with all API metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cms_http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cms_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by method and route",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"method", "route"},
		),

		StoreOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cms_store_operations_total",
				Help: "Document store operations by collection, operation and result",
			},
			[]string{"collection", "op", "result"},
		),
	}

	r.reg.MustRegister(r.HTTPRequests, r.HTTPDuration, r.StoreOps)
	return r
}

// Handler serves the /metrics endpoint for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and durations. Routes are labeled by
// the matched template (low cardinality), not the raw path.
func (r *Registry) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveStore records one document-store operation.
func (r *Registry) ObserveStore(collection, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.StoreOps.WithLabelValues(collection, op, result).Inc()
}
