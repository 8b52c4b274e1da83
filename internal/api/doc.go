// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Package api implements the eHealth HTTP API on the chi router.

# Routes

	GET  /                  plain-text welcome message
	POST /api/auth/login    placeholder login, always {"token":"your-jwt-token"}
	GET  /health/live       liveness probe
	GET  /health/ready      readiness probe (503 until SetReady(true))
	GET  /metrics           Prometheus metrics
	GET  /api-docs          Swagger UI for the generated OpenAPI document
	GET  /api-docs/doc.json the OpenAPI 3.0.0 document

The documentation path is configurable (DOCS_PATH).

# Middleware

Applied to every route, outermost first:

	RequestID -> RealIP -> AccessLog -> PrometheusMetrics -> Recoverer ->
	SecurityHeaders -> CORS -> Compress -> JSONBody

The authentication group adds per-IP rate limiting from go-chi/httprate.

# Error Handling

Handlers return error. handle() passes any non-nil error to ErrorHandler,
which logs it with the request context and writes the error envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "...", "request_id": "..."},
	  "error": {"code": "PAYLOAD_TOO_LARGE", "message": "..."}
	}

Errors implementing StatusError keep their status and code. Everything else,
including recovered panics, becomes a 500 with code INTERNAL_ERROR and a
generic message. Body parser and rate limiter rejections use the same path.

# Usage

	handler := api.NewHandler(cfg, version)
	router := api.NewRouter(cfg, handler)
	h, err := router.SetupChi()
	if err != nil {
		return err
	}
	handler.SetReady(true)
*/
package api
