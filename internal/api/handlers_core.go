// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"io"
	"net/http"
)

// WelcomeMessage is the root endpoint's body.
const WelcomeMessage = "Welcome to eHealth API"

// Welcome answers GET / with a plain-text greeting.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := io.WriteString(w, WelcomeMessage)
	return err
}

// NotFound renders unmatched API paths as a 404 envelope.
func (h *Handler) NotFound(_ http.ResponseWriter, _ *http.Request) error {
	return ErrNotFound
}

// MethodNotAllowed renders a 405 envelope. chi sets the Allow header.
func (h *Handler) MethodNotAllowed(_ http.ResponseWriter, _ *http.Request) error {
	return ErrMethodNotAllowed
}
