// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthLogger_LogLoginStub(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewAuthLoggerWithLogger(NewTestLogger(&buf))

	l.LogLoginStub("req-1", "jane.doe@example.com", "10.0.0.1", strings.Repeat("a", 150), "your-jwt-token")

	out := buf.String()
	assert.Contains(t, out, `"component":"auth"`)
	assert.Contains(t, out, `"event":"login_stub"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"identity":"ja***@example.com"`)
	assert.Contains(t, out, `"ip":"10.0.0.1"`)
	assert.Contains(t, out, `"token":"your...oken"`)
	assert.NotContains(t, out, "your-jwt-token")
	assert.NotContains(t, out, strings.Repeat("a", 101))
}

func TestAuthLogger_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewAuthLoggerWithLogger(NewTestLogger(&buf))

	l.LogEvent(&AuthEvent{Event: "login_stub", Details: map[string]string{"password": "hunter2hunter2", "source": "web"}})

	out := buf.String()
	assert.NotContains(t, out, "identity")
	assert.NotContains(t, out, "hunter2hunter2")
	assert.Contains(t, out, `"source":"web"`)
}

func TestSanitizers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"token empty", SanitizeToken, "", ""},
		{"token short", SanitizeToken, "abc", "***"},
		{"token long", SanitizeToken, "eyJhbGciOiJSUzI1NiIs", "eyJh...NiIs"},
		{"username", SanitizeUsername, "johndoe", "jo***"},
		{"username short", SanitizeUsername, "jo", "***"},
		{"email", SanitizeEmail, "john.doe@example.com", "jo***@example.com"},
		{"email short local", SanitizeEmail, "jd@example.com", "***@example.com"},
		{"email no at", SanitizeEmail, "@example.com", "***"},
		{"identity email", SanitizeIdentity, "nurse@clinic.org", "nu***@clinic.org"},
		{"identity username", SanitizeIdentity, "drhouse", "dr***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", SanitizeValue("Password", "secret"))
	assert.Equal(t, "abcd...mnop", SanitizeValue("token", "abcdefghijklmnop"))
	assert.Equal(t, "pa***@x.io", SanitizeValue("contact", "patient@x.io"))
	assert.Equal(t, "plain", SanitizeValue("note", "plain"))
}
