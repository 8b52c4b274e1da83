// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ehealth/internal/logging"
	"github.com/tomtom215/ehealth/internal/models"
)

// respondJSON encodes v with the given status. API responses are never
// cached.
func respondJSON(w http.ResponseWriter, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		// Headers are already sent; nothing useful can be returned.
		logging.Debug().Err(err).Msg("Failed to write response body")
	}
	return nil
}

// respondSuccess writes data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}) error {
	return respondJSON(w, status, models.NewSuccessResponse(data, logging.RequestIDFromContext(r.Context())))
}

// respondError writes an error envelope. It is only called from
// ErrorHandler; handlers return errors instead.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if err := respondJSON(w, status, newErrorResponse(r, code, message)); err != nil {
		logging.Error().Err(err).Msg("Failed to encode error response")
		http.Error(w, http.StatusText(status), status)
	}
}
