// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// AuthEvent is an authentication-related event for the audit trail.
type AuthEvent struct {
	// Event names what happened, e.g. "login_stub".
	Event string
	// Identity is whatever the client claimed to be (email or username). Masked before logging.
	Identity string
	// IPAddress is the client address.
	IPAddress string
	// UserAgent is truncated to 100 bytes.
	UserAgent string
	// Token is the issued token. Masked before logging.
	Token string
	// RequestID ties the event to the access log.
	RequestID string
	// Details holds extra fields; values are sanitized by key name.
	Details map[string]string
}

// AuthLogger writes authentication events with sensitive values masked.
type AuthLogger struct {
	logger zerolog.Logger
}

// NewAuthLogger returns an AuthLogger on top of the global logger.
func NewAuthLogger() *AuthLogger {
	return &AuthLogger{logger: WithComponent("auth")}
}

// NewAuthLoggerWithLogger returns an AuthLogger writing to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuthLoggerWithLogger(logger zerolog.Logger) *AuthLogger {
	return &AuthLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LogEvent writes event at info level.
func (l *AuthLogger) LogEvent(event *AuthEvent) {
	e := l.logger.Info().Str("event", event.Event)

	if event.RequestID != "" {
		e = e.Str("request_id", event.RequestID)
	}
	if event.Identity != "" {
		e = e.Str("identity", SanitizeIdentity(event.Identity))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Token != "" {
		e = e.Str("token", SanitizeToken(event.Token))
	}
	for k, v := range event.Details {
		e = e.Str(k, SanitizeValue(k, v))
	}

	e.Msg("")
}

// LogLoginStub records a call to the placeholder login endpoint.
func (l *AuthLogger) LogLoginStub(requestID, identity, ip, userAgent, token string) {
	l.LogEvent(&AuthEvent{
		Event:     "login_stub",
		Identity:  identity,
		IPAddress: ip,
		UserAgent: userAgent,
		Token:     token,
		RequestID: requestID,
	})
}

// SanitizeToken keeps the first and last 4 characters of a token.
//
//	"eyJhbGciOiJSUzI1NiIs" -> "eyJh...NiIs"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeIdentity masks an email or a username.
func SanitizeIdentity(identity string) string {
	if strings.Contains(identity, "@") {
		return SanitizeEmail(identity)
	}
	return SanitizeUsername(identity)
}

// SanitizeUsername keeps the first 2 characters.
//
//	"johndoe" -> "jo***"
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeEmail masks the local part of an address.
//
//	"john.doe@example.com" -> "jo***@example.com"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}

	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}

var sensitiveKeys = map[string]bool{
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
	"password":      true,
	"secret":        true,
	"api_key":       true,
	"authorization": true,
	"cookie":        true,
}

// SanitizeValue masks value when key looks sensitive or value looks like an email.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}
	if strings.Contains(value, "@") && strings.Contains(value, ".") {
		return SanitizeEmail(value)
	}
	return value
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
