package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus registry and the collectors used by the
// apiserver and the provision scheduler.
type Metrics struct {
	registry *prometheus.Registry

	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec

	provisionRuns     *prometheus.CounterVec
	provisionCreated  prometheus.Counter
	provisionUserErrs prometheus.Counter
}

// New builds a Metrics instance with its own registry.
func New(namespace string) *Metrics {
	r := prometheus.NewRegistry()
	// Register standard process and Go collectors
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds"}, []string{"method", "route", "status"})
	r.MustRegister(httpReqCnt, httpDur)

	provisionRuns := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "provision_runs_total"}, []string{"status"})
	provisionCreated := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "provision_processes_created_total"})
	provisionUserErrs := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "provision_user_failures_total"})
	r.MustRegister(provisionRuns, provisionCreated, provisionUserErrs)

	return &Metrics{
		registry:          r,
		httpReqCnt:        httpReqCnt,
		httpDur:           httpDur,
		provisionRuns:     provisionRuns,
		provisionCreated:  provisionCreated,
		provisionUserErrs: provisionUserErrs,
	}
}

// ProvisionRun records one provisioner run, status "success" or "error".
func (m *Metrics) ProvisionRun(status string) {
	m.provisionRuns.WithLabelValues(status).Inc()
}

// ProvisionCreated records processes inserted by the provisioner.
func (m *Metrics) ProvisionCreated(n int) {
	m.provisionCreated.Add(float64(n))
}

// ProvisionUserFailure records a per-user provisioning failure.
func (m *Metrics) ProvisionUserFailure() {
	m.provisionUserErrs.Inc()
}

// Middleware returns a gin middleware recording request counts and durations.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
