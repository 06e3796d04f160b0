package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// webMetrics records per-request Prometheus metrics on a private registry.
type webMetrics struct {
	registry *prom.Registry
	requests *prom.CounterVec
	duration *prom.HistogramVec
}

func newWebMetrics() *webMetrics {
	m := &webMetrics{registry: prom.NewRegistry()}
	m.requests = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "bootstrapcdn",
		Name:      "http_requests_total",
		Help:      "HTTP request counts by route and status",
	}, []string{"route", "status"})
	m.duration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "bootstrapcdn",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by route",
		Buckets:   prom.DefBuckets,
	}, []string{"route"})
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

// Middleware observes every request after the handler chain completes.
func (m *webMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the metrics registry in OpenMetrics format.
func (m *webMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
