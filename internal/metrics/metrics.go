// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// APIErrorsTotal counts responses written by the central error handler.
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses by error code",
		},
		[]string{"code"},
	)

	// Auth metrics
	LoginStubTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_login_stub_tokens_total",
			Help: "Total number of placeholder tokens issued by the login endpoint",
		},
	)

	// Docs metrics
	DocsOperations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docs_operations",
			Help: "Number of operations in the generated OpenAPI document",
		},
	)

	DocsBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docs_build_duration_seconds",
			Help:    "Time taken to assemble the OpenAPI document",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// Web client metrics
	WebPageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "web_page_renders_total",
			Help: "Total number of web client views rendered",
		},
		[]string{"view", "status_code"},
	)

	WebRenderErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "web_render_errors_total",
			Help: "Total number of web client template execution failures",
		},
	)

	// BuildInfo is always 1; labels carry the build metadata.
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ehealth_build_info",
			Help: "Build information for the running binary",
		},
		[]string{"version", "commit", "process"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a 429 for endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordAPIError counts an error response by code.
func RecordAPIError(code string) {
	APIErrorsTotal.WithLabelValues(code).Inc()
}

// RecordLoginStub counts a placeholder token handed out.
func RecordLoginStub() {
	LoginStubTokensIssued.Inc()
}

// RecordDocsBuild records how long the document took to build and how many
// operations it has.
func RecordDocsBuild(operations int, duration time.Duration) {
	DocsOperations.Set(float64(operations))
	DocsBuildDuration.Observe(duration.Seconds())
}

// RecordPageRender counts one rendered web client view.
func RecordPageRender(view, statusCode string) {
	WebPageRendersTotal.WithLabelValues(view, statusCode).Inc()
}

// RecordRenderError counts a template execution failure.
func RecordRenderError() {
	WebRenderErrors.Inc()
}

// SetBuildInfo publishes build metadata for process ("api", "web", or "all"
// when serve runs both servers).
func SetBuildInfo(version, commit, process string) {
	BuildInfo.WithLabelValues(version, commit, process).Set(1)
}
