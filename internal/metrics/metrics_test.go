// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("POST", "/api/auth/login", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("POST", "/api/auth/login", "200", 3*time.Millisecond)
	RecordAPIRequest("POST", "/api/auth/login", "200", 4*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Positive(t, testutil.CollectAndCount(APIRequestDuration, "api_request_duration_seconds"))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	assert.Equal(t, before+2, testutil.ToFloat64(APIActiveRequests))

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}

func TestCounters(t *testing.T) {
	tests := []struct {
		name   string
		record func()
		c      prometheus.Collector
	}{
		{"rate limit", func() { RecordRateLimitHit("/api/auth") }, APIRateLimitHits.WithLabelValues("/api/auth")},
		{"api error", func() { RecordAPIError("INTERNAL_ERROR") }, APIErrorsTotal.WithLabelValues("INTERNAL_ERROR")},
		{"login stub", RecordLoginStub, LoginStubTokensIssued},
		{"page render", func() { RecordPageRender("not_found", "404") }, WebPageRendersTotal.WithLabelValues("not_found", "404")},
		{"render error", RecordRenderError, WebRenderErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(tt.c)
			tt.record()
			assert.Equal(t, before+1, testutil.ToFloat64(tt.c))
		})
	}
}

func TestRecordDocsBuild(t *testing.T) {
	RecordDocsBuild(3, 250*time.Microsecond)

	assert.Equal(t, float64(3), testutil.ToFloat64(DocsOperations))
	assert.Equal(t, 1, testutil.CollectAndCount(DocsBuildDuration))
}

func TestSetBuildInfo(t *testing.T) {
	for _, process := range []string{"api", "web", "all"} {
		SetBuildInfo("1.0.0", "abc123", process)

		assert.Equal(t, float64(1), testutil.ToFloat64(BuildInfo.WithLabelValues("1.0.0", "abc123", process)))
	}
}

func TestMetricLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"api_requests_total",
		"api_active_requests",
		"api_errors_total",
		"auth_login_stub_tokens_total",
		"docs_operations",
		"web_page_renders_total",
	)
	require.NoError(t, err)
	assert.Empty(t, problems)
}
