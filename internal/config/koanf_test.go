// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config discovery at an empty temp dir so a stray
// config.yaml in the package directory cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv(ConfigPathEnvVar, "")
	for env := range envMappings {
		name := strings.ToUpper(env)
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, int64(102400), cfg.Server.BodyLimitBytes)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 5173, cfg.Web.Port)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "/api-docs", cfg.Docs.Path)
	assert.Equal(t, "eHealth API", cfg.Docs.Title)
	assert.Equal(t, "1.0.0", cfg.Docs.Version)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	require.NoError(t, cfg.Validate())
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, "0.0.0.0:5173", cfg.Web.Addr())
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_TIMEOUT", "45s")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org,")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("DOCS_PATH", "/docs")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example.org", "https://b.example.org"}, cfg.Security.CORSOrigins)
	assert.True(t, cfg.Security.RateLimitDisabled)
	assert.Equal(t, "/docs", cfg.Docs.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithKoanf_PortAlias(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "5001")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
}

func TestLoadWithKoanf_YAMLFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "ehealth.yaml")
	yaml := `
server:
  port: 6000
  environment: staging
web:
  port: 6001
security:
  cors_origins:
    - http://localhost:6001
docs:
  title: eHealth API (staging)
logging:
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Environment)
	assert.Equal(t, 6001, cfg.Web.Port)
	assert.Equal(t, []string{"http://localhost:6001"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "eHealth API (staging)", cfg.Docs.Title)
	assert.Equal(t, "1.0.0", cfg.Docs.Version)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadWithKoanf_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 6000\n"), 0o600))
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadWithKoanf_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "port out of range", env: map[string]string{"HTTP_PORT": "70000"}},
		{name: "bad environment", env: map[string]string{"ENVIRONMENT": "qa"}},
		{name: "relative docs path", env: map[string]string{"DOCS_PATH": "api-docs"}},
		{name: "bad origin", env: map[string]string{"CORS_ORIGINS": "not a url"}},
		{name: "same port", env: map[string]string{"HTTP_PORT": "5173"}},
		{name: "malformed yaml", file: "server: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.file), 0o600))
			}

			cfg, err := LoadWithKoanf()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	assert.Empty(t, findConfigFile())

	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{}"), 0o600))
	assert.Equal(t, "config.yml", findConfigFile())
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":          "server.port",
		"http_port":          "server.port",
		"WEB_PORT":           "web.port",
		"CORS_ORIGINS":       "security.cors_origins",
		"DISABLE_RATE_LIMIT": "security.rate_limit_disabled",
		"DOCS_TITLE":         "docs.title",
		"LOG_CALLER":         "logging.caller",
		"HOME":               "",
		"PATH":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, envTransformFunc(in), in)
	}
}

func TestProcessSliceFields(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	require.NoError(t, k.Set("security.cors_origins", " http://a.test ,,http://b.test "))
	require.NoError(t, processSliceFields(k))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, k.Strings("security.cors_origins"))

	k = koanf.New(".")
	require.NoError(t, k.Set("security.cors_origins", " , "))
	require.NoError(t, processSliceFields(k))
	assert.Equal(t, " , ", k.String("security.cors_origins"))
}
