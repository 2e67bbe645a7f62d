package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	meetingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meetings_created_total",
			Help: "Total number of meeting requests created",
		},
	)

	meetingsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meetings_updated_total",
			Help: "Total number of meeting requests updated",
		},
	)

	validationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_validation_failures_total",
			Help: "Total number of rejected meeting payloads",
		},
		[]string{"reason"}, // schema, future
	)
)

// PrometheusMiddleware returns echo middleware that records request metrics.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Skip metrics endpoint itself
			if req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			if req.ContentLength > 0 {
				httpRequestSize.WithLabelValues(req.Method, c.Path()).Observe(float64(req.ContentLength))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(req.Method, c.Path(), statusCode).Inc()
			httpRequestDuration.WithLabelValues(req.Method, c.Path(), statusCode).Observe(duration)
			return nil
		}
	}
}

// RecordMeetingCreated records a new meeting request
func RecordMeetingCreated() {
	meetingsCreatedTotal.Inc()
}

// RecordMeetingUpdated records a meeting request update
func RecordMeetingUpdated() {
	meetingsUpdatedTotal.Inc()
}

// RecordValidationFailure records a rejected payload by reason
func RecordValidationFailure(reason string) {
	validationFailuresTotal.WithLabelValues(reason).Inc()
}
