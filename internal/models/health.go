// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package models

// HealthStatus is returned by the liveness and readiness probes.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	Environment string  `json:"environment"`
	Uptime      float64 `json:"uptime"`
}

// Health status values.
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusStarting = "starting"
)
