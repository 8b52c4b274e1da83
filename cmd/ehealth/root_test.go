// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/ehealth/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand(newApp("test", "abc123", &out))
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "ehealth version test")
	assert.Contains(t, out, "commit: abc123")
}

func TestOpenAPICommand(t *testing.T) {
	out, err := execute(t, "openapi")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
	assert.Contains(t, doc["paths"], "/api/auth/login")
}

func TestOpenAPICommand_Compact(t *testing.T) {
	out, err := execute(t, "openapi", "--compact")

	require.NoError(t, err)
	assert.NotContains(t, out, "\n  ")
}

func TestEnvFile(t *testing.T) {
	if _, set := os.LookupEnv("DOCS_TITLE"); set {
		t.Skip("DOCS_TITLE is set in the environment")
	}
	t.Cleanup(func() { _ = os.Unsetenv("DOCS_TITLE") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DOCS_TITLE=Clinic API\n"), 0o600))

	out, err := execute(t, "--env-file", envFile, "openapi")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Clinic API"`)
}

func TestEnvFile_Missing(t *testing.T) {
	_, err := execute(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"), "openapi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")

	_, err := execute(t, "openapi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "migrate")
	assert.Error(t, err)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewAPIServer(t *testing.T) {
	cfg := testConfig(t)

	srv, handler, err := newAPIServer(cfg, "test")
	require.NoError(t, err)

	assert.Equal(t, cfg.Server.Timeout, srv.ReadTimeout)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
	assert.False(t, handler.Ready())

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"your-jwt-token"}`, rec.Body.String())
}

func TestNewWebServer(t *testing.T) {
	srv, err := newWebServer(testConfig(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some/page", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 - Page Not Found")
}

func TestRun_StopsOnCancel(t *testing.T) {
	a := newApp("test", "abc123", &bytes.Buffer{})
	a.cfg = testConfig(t)
	a.cfg.Server.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx, "test") }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}
