// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package middleware

import (
	"net/http"
	"strconv"
)

// DefaultContentSecurityPolicy allows same-origin scripts only. Inline styles
// are permitted because the documentation UI sets them at runtime.
const DefaultContentSecurityPolicy = "default-src 'self';" +
	"base-uri 'self';" +
	"font-src 'self' https: data:;" +
	"form-action 'self';" +
	"frame-ancestors 'self';" +
	"img-src 'self' data:;" +
	"object-src 'none';" +
	"script-src 'self';" +
	"script-src-attr 'none';" +
	"style-src 'self' https: 'unsafe-inline';" +
	"upgrade-insecure-requests"

// SecurityHeadersConfig controls SecurityHeaders. The zero value is usable
// and yields the defaults.
type SecurityHeadersConfig struct {
	// ContentSecurityPolicy replaces DefaultContentSecurityPolicy when set.
	ContentSecurityPolicy string

	// DisableCSP omits the Content-Security-Policy header entirely.
	DisableCSP bool

	// HSTSMaxAge in seconds. 0 means 180 days.
	HSTSMaxAge int

	// FrameOptions is DENY or SAMEORIGIN. Empty means SAMEORIGIN.
	FrameOptions string
}

const defaultHSTSMaxAge = 15552000

// SecurityHeaders sets a conservative set of browser security headers on
// every response and removes X-Powered-By.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	csp := cfg.ContentSecurityPolicy
	if csp == "" {
		csp = DefaultContentSecurityPolicy
	}
	maxAge := cfg.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = defaultHSTSMaxAge
	}
	frameOptions := cfg.FrameOptions
	if frameOptions == "" {
		frameOptions = "SAMEORIGIN"
	}
	hsts := "max-age=" + strconv.Itoa(maxAge) + "; includeSubDomains"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			if !cfg.DisableCSP {
				h.Set("Content-Security-Policy", csp)
			}
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
			h.Set("Origin-Agent-Cluster", "?1")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Strict-Transport-Security", hsts)
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-DNS-Prefetch-Control", "off")
			h.Set("X-Download-Options", "noopen")
			h.Set("X-Frame-Options", frameOptions)
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
			h.Set("X-XSS-Protection", "0")
			h.Del("X-Powered-By")

			next.ServeHTTP(w, r)
		})
	}
}
