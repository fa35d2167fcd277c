// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"API_BASE_URL":         "http://localhost:8000/api",
		"API_REQUEST_TIMEOUT":  "30s",
		"API_CSRF_COOKIE_NAME": "csrftoken",

		"STORAGE_DB_DATABASE_URI": "/var/lib/qryptify/client.db",

		"ASSISTANT_API_KEY": "secret-key",
		"ASSISTANT_MODEL":   "gemini-2.0-flash",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "csrftoken", cfg.API.CSRFCookieName)

	assert.Equal(t, "/var/lib/qryptify/client.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "secret-key", cfg.Assistant.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Assistant.Model)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"API_BASE_URL": "http://localhost:8000/api",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
