// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/ehealth/internal/validation"
)

// Validate checks struct tags first, then rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validatePorts(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateShutdown()
}

// validatePorts rejects both servers claiming the same listen address.
func (c *Config) validatePorts() error {
	if c.Server.Port == c.Web.Port && c.Server.Host == c.Web.Host {
		return fmt.Errorf("HTTP_PORT and WEB_PORT must differ when both servers bind %q (got %d)", c.Server.Host, c.Server.Port)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000 (got %d)", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h (got %s)", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateShutdown() error {
	if c.Server.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be at most 5m (got %s)", c.Server.ShutdownTimeout)
	}
	return nil
}

// hasWildcardCORS reports whether any origin is "*".
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS is true for a production deployment that still allows
// every origin. It is a warning rather than an error because the API issues
// no real credentials.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// IsProduction reports ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports ENVIRONMENT=development.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
