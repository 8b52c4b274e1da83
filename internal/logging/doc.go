// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

// Package logging provides zerolog-based structured logging for eHealth.
//
// A single global logger is configured once at startup and shared by the API
// server, the web client server and the supervisor tree.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("API server listening")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
//
// # Configuration
//
// Environment variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The request ID middleware stores the X-Request-ID and a short correlation
// ID in the request context. Ctx attaches both to every line it emits.
//
// # slog Adapter
//
// suture reports supervisor events through a *slog.Logger. NewSlogLogger
// returns one that writes through the global zerolog logger.
//
// # Auth Events
//
// AuthLogger records calls to the login endpoint with identities and tokens
// masked.
//
// # Output Formats
//
// JSON:
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"API server listening","addr":":5000"}
//
// Console:
//
//	10:30:00 INF API server listening addr=:5000
//
// All exported functions are safe for concurrent use.
package logging
