// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tomtom215/ehealth/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	original := logging.Logger()
	originalLevel := logging.GetLevel()
	logging.SetLogger(logging.NewTestLogger(&buf))
	logging.SetLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetLogger(original)
		logging.SetLevel(originalLevel)
	})
	return &buf
}

func TestAccessLog_Levels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		sleep  time.Duration
		slow   time.Duration
		level  string
	}{
		{"ok is debug", http.StatusOK, 0, time.Hour, `"level":"debug"`},
		{"server error is error", http.StatusInternalServerError, 0, time.Hour, `"level":"error"`},
		{"slow is warn", http.StatusOK, 5 * time.Millisecond, time.Millisecond, `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			handler := AccessLog(tt.slow)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, `"message":"Request completed"`)
			assert.Contains(t, out, `"path":"/health/live"`)
			assert.Contains(t, out, `"bytes":4`)
		})
	}
}

func TestAccessLog_DefaultThreshold(t *testing.T) {
	buf := captureLogs(t)

	handler := AccessLog(0)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestAccessLog_StripsLineBreaksFromPath(t *testing.T) {
	buf := captureLogs(t)

	handler := AccessLog(time.Hour)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/page%0D%0Aforged", nil)
	assert.Equal(t, "/page\r\nforged", req.URL.Path)

	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"path":"/pageforged"`)
	assert.NotContains(t, buf.String(), `\r`)
	assert.NotContains(t, buf.String(), `\n`)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/a/b", sanitizePath("/a/b"))
	assert.Equal(t, "/ab", sanitizePath("/a\r\nb"))
	assert.Equal(t, "/ab", sanitizePath("/a\nb"))
}
