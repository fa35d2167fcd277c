// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// qryptify client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// API holds the backend endpoint address and request timeout used by
	// the dispatcher.
	API API `envPrefix:"API_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Assistant holds the support-assistant LLM integration settings.
	Assistant Assistant `envPrefix:"ASSISTANT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args is what remains of the command line after the configuration
	// flags; the command tree consumes it. Populated by [ParseFlags].
	Args []string `env:"-" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown by the version command.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds network settings for the outbound transport layer.
type API struct {
	// BaseURL is the root of the Qryptify backend API, including the
	// "/api" path segment (e.g. "http://localhost:8000/api").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CSRFCookieName is the name of the cookie the backend issues its
	// anti-forgery token under. Defaults to "csrftoken".
	// Env: API_CSRF_COOKIE_NAME
	CSRFCookieName string `env:"CSRF_COOKIE_NAME"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps
// the persisted session and the analysis history.
type DB struct {
	// DSN is the SQLite file path used by the client
	// (e.g. "~/.qryptify/client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Assistant holds settings for the LLM-backed support chat. The API key
// lives in the environment of the host running the client, never in
// source or in any shipped artifact.
type Assistant struct {
	// APIKey authenticates against the model provider. When empty the
	// chat falls back to FAQ-only answers.
	// Env: ASSISTANT_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier to use (e.g. "gemini-2.0-flash").
	// Env: ASSISTANT_MODEL
	Model string `env:"MODEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Priority order (later sources override earlier non-zero fields):
// environment variables, command-line flags, JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
