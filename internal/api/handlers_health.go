// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ehealth/internal/models"
)

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) error {
	return respondSuccess(w, r, http.StatusOK, h.healthStatus(models.HealthStatusHealthy))
}

// HealthReady returns 503 until SetReady(true) has been called.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) error {
	if !h.Ready() {
		return respondSuccess(w, r, http.StatusServiceUnavailable, h.healthStatus(models.HealthStatusStarting))
	}
	return respondSuccess(w, r, http.StatusOK, h.healthStatus(models.HealthStatusHealthy))
}

func (h *Handler) healthStatus(status string) models.HealthStatus {
	env := ""
	if h.config != nil {
		env = h.config.Server.Environment
	}
	return models.HealthStatus{
		Status:      status,
		Version:     h.version,
		Environment: env,
		Uptime:      time.Since(h.startTime).Seconds(),
	}
}
