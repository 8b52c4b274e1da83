// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all runtime configuration for both processes.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Web      WebConfig      `koanf:"web"`
	Security SecurityConfig `koanf:"security"`
	Docs     DocsConfig     `koanf:"docs"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gte=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=1s"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production test"`

	// BodyLimitBytes caps JSON request bodies. Larger bodies get 413.
	BodyLimitBytes int64 `koanf:"body_limit_bytes" validate:"min=1024,max=10485760"`
}

// Addr returns host:port for http.Server.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// WebConfig configures the web client server.
type WebConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`
}

// Addr returns host:port for http.Server.
func (w *WebConfig) Addr() string {
	return net.JoinHostPort(w.Host, strconv.Itoa(w.Port))
}

// SecurityConfig holds cross-origin and rate limiting settings for the API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1,dive,origin"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// DocsConfig configures the generated API documentation.
type DocsConfig struct {
	// Path is where the documentation UI is mounted.
	Path    string `koanf:"path" validate:"required,urlpath"`
	Title   string `koanf:"title" validate:"required"`
	Version string `koanf:"version" validate:"required"`
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (last wins).
func Load() (*Config, error) {
	return LoadWithKoanf()
}
