package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitbyte",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitbyte",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	authFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitbyte",
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Rejected authentications by guard tier and error kind.",
	}, []string{"tier", "kind"})
	rateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitbyte",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})
	uploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitbyte",
		Subsystem: "upload",
		Name:      "files_total",
		Help:      "Upload attempts by outcome.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, authFailures, rateLimited, uploads)
}

// ObserveRequest records one completed HTTP request
func ObserveRequest(method, route, status string, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordAuthFailure counts a rejected authentication
func RecordAuthFailure(tier, kind string) {
	authFailures.WithLabelValues(tier, kind).Inc()
}

func RecordRateLimited() {
	rateLimited.Inc()
}

// RecordUpload counts an upload attempt; result is "ok" or an error kind
func RecordUpload(result string) {
	uploads.WithLabelValues(result).Inc()
}
