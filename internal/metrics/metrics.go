// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsTotal counts handled requests by route, method and status
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookbook_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// httpRequestDuration tracks handler latency
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cookbook_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"route", "method"})

	// recipeWritesTotal counts aggregate writes by operation and result
	recipeWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookbook_recipe_writes_total",
		Help: "Total recipe aggregate writes by operation and result",
	}, []string{"operation", "result"})

	// childWritesTotal counts child rows written by collection and kind
	childWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookbook_child_writes_total",
		Help: "Total child row writes by collection and kind",
	}, []string{"collection", "kind"})
)

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordWrite counts one create or update of a recipe aggregate.
func RecordWrite(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	recipeWritesTotal.WithLabelValues(operation, result).Inc()
}

// ObservePlan counts the rows a reconcile plan wrote for one collection.
func ObservePlan(collection string, inserts, updates, deletes int) {
	childWritesTotal.WithLabelValues(collection, "insert").Add(float64(inserts))
	childWritesTotal.WithLabelValues(collection, "update").Add(float64(updates))
	childWritesTotal.WithLabelValues(collection, "delete").Add(float64(deletes))
}
