// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

// Package metrics defines the Prometheus collectors for eHealth.
//
// Collectors register with the default registry through promauto and are
// exposed by the API server at GET /metrics.
//
// # API
//
//	api_requests_total{method,endpoint,status_code}
//	api_request_duration_seconds{method,endpoint}
//	api_active_requests
//	api_rate_limit_hits_total{endpoint}
//	api_errors_total{code}
//	auth_login_stub_tokens_total
//
// The endpoint label is the chi route pattern, not the raw path, so unknown
// URLs do not create new series.
//
// # Docs
//
//	docs_operations
//	docs_build_duration_seconds
//
// # Web client
//
//	web_page_renders_total{view,status_code}
//	web_render_errors_total
//
// # Process
//
//	ehealth_build_info{version,commit,process}
package metrics
