// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Package middleware provides the HTTP middleware shared by the eHealth API and
web client servers.

Components:

  - RequestID: X-Request-ID propagation plus a correlation ID for logging
  - PrometheusMetrics: request count, latency and in-flight gauge per chi route
  - SecurityHeaders: browser hardening headers (CSP, HSTS, frame and sniffing protection)
  - JSONBody: size-limited JSON body reader that tolerates malformed input
  - AccessLog: one structured log line per request, warn on slow requests

RequestID and PrometheusMetrics are http.HandlerFunc decorators; internal/api
adapts them to chi with chiMiddleware. The others are already
func(http.Handler) http.Handler.

Errors raised by JSONBody are not written here. They are passed to an
ErrorFunc supplied by the caller so the API renders them with its central
error handler.
*/
package middleware
