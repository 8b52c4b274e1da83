// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"net/http"

	"github.com/tomtom215/ehealth/internal/logging"
	"github.com/tomtom215/ehealth/internal/metrics"
	"github.com/tomtom215/ehealth/internal/middleware"
	"github.com/tomtom215/ehealth/internal/models"
)

// Login is a placeholder for authentication. Every request succeeds with
// the same fixed token; the body is read only to log who asked.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	req := loginRequestFromContext(r)

	h.authLog.LogLoginStub(
		logging.RequestIDFromContext(r.Context()),
		req.Identity(),
		r.RemoteAddr,
		r.UserAgent(),
		models.StubToken,
	)
	metrics.RecordLoginStub()

	return respondJSON(w, http.StatusOK, models.LoginResponse{Token: models.StubToken})
}

// loginRequestFromContext picks the identity fields out of the body decoded
// by the JSONBody middleware. Missing or malformed bodies yield an empty
// request.
func loginRequestFromContext(r *http.Request) *models.LoginRequest {
	req := &models.LoginRequest{}

	body, ok := middleware.JSONBodyFromContext(r.Context())
	if !ok {
		return req
	}
	fields, ok := body.(map[string]interface{})
	if !ok {
		return req
	}
	if v, ok := fields["email"].(string); ok {
		req.Email = v
	}
	if v, ok := fields["username"].(string); ok {
		req.Username = v
	}
	return req
}
