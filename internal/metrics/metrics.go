package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors the server exports on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	SessionsCreated   prometheus.Counter
	SessionsDeleted   prometheus.Counter
	ResponsesRecorded *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	AnalysisFailures  prometheus.Counter
	FeedbackGenerated *prometheus.CounterVec

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "practice_sessions_created_total",
			Help: "Total number of practice sessions created",
		}),
		SessionsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "practice_sessions_deleted_total",
			Help: "Total number of practice sessions deleted",
		}),
		ResponsesRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "practice_responses_recorded_total",
				Help: "Total number of scored responses, by question category",
			},
			[]string{"category"},
		),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "practice_analysis_duration_seconds",
			Help:    "Duration of response analysis calls",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		}),
		AnalysisFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "practice_analysis_failures_total",
			Help: "Total number of failed or timed out analysis calls",
		}),
		FeedbackGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "practice_feedback_generated_total",
				Help: "Total number of session feedbacks, by readiness level",
			},
			[]string{"readiness"},
		),

		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SessionsCreated,
		m.SessionsDeleted,
		m.ResponsesRecorded,
		m.AnalysisDuration,
		m.AnalysisFailures,
		m.FeedbackGenerated,
		m.RequestCounter,
		m.RequestDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request. endpoint should be the
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.RequestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}
