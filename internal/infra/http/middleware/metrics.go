package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsPromoted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_leads_promoted_total",
			Help: "Total number of lead promotions by resulting stage",
		},
		[]string{"stage"},
	)

	dealsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_deals_closed_total",
			Help: "Total number of deals moved to Closed",
		},
	)

	aiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_ai_requests_total",
			Help: "Total number of AI gateway requests by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	outreachPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_outreach_published_total",
			Help: "Total number of outreach drafts queued for delivery",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadPromotion(stage string) {
	leadsPromoted.WithLabelValues(stage).Inc()
}

func RecordDealClosed() {
	dealsClosed.Inc()
}

func RecordAIRequest(operation, status string) {
	aiRequests.WithLabelValues(operation, status).Inc()
}

func RecordOutreachPublished() {
	outreachPublished.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
