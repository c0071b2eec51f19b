// Package metrics exposes Prometheus instruments for the HTTP surface
// and the audit pipeline. Everything registers on the default registry
// and is served by the /metrics endpoint.
package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics instruments the gin router.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "feedscope_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feedscope_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// GinMiddleware records a counter and latency sample per request.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := strings.ToLower(strconvStatus(c.Writer.Status()))

		m.requests.WithLabelValues(route, method, status).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

func strconvStatus(status int) string {
	// Cardinality guard: bucket statuses by class.
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// AuditMetrics instruments the audit pipeline.
type AuditMetrics struct {
	runs     *prometheus.CounterVec
	issues   *prometheus.CounterVec
	duration prometheus.Histogram
	products prometheus.Histogram
}

func NewAuditMetrics() *AuditMetrics {
	return &AuditMetrics{
		runs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "feedscope_audit_runs_total",
			Help: "Completed audit runs by outcome.",
		}, []string{"status"}),
		issues: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "feedscope_audit_issues_total",
			Help: "Issues found by analysis area and severity.",
		}, []string{"area", "severity"}),
		duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedscope_audit_duration_seconds",
			Help:    "Wall-clock duration of one audit run.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		products: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedscope_audit_products",
			Help:    "Number of products per audit run.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
	}
}

// ObserveRun records one finished audit run.
func (m *AuditMetrics) ObserveRun(status string, duration time.Duration, productCount int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(strings.TrimSpace(status)).Inc()
	m.duration.Observe(duration.Seconds())
	m.products.Observe(float64(productCount))
}

// AddIssues records issue counts for one analysis area.
func (m *AuditMetrics) AddIssues(area, severity string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.issues.WithLabelValues(area, severity).Add(float64(count))
}
