// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/ehealth/internal/config"
	"github.com/tomtom215/ehealth/internal/logging"
)

// Handler holds the state shared by the API route handlers.
type Handler struct {
	config    *config.Config
	authLog   *logging.AuthLogger
	startTime time.Time
	version   string
	ready     atomic.Bool
}

// NewHandler creates a Handler. version is reported by the health probes.
// The handler is not ready until SetReady(true) is called.
func NewHandler(cfg *config.Config, version string) *Handler {
	return &Handler{
		config:    cfg,
		authLog:   logging.NewAuthLogger(),
		startTime: time.Now(),
		version:   version,
	}
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports the readiness flag.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}
