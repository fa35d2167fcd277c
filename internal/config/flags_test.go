package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_StopsAtCommandWord verifies that configuration flags are
// consumed and everything from the first non-flag token on is passed
// through untouched.
func TestParseFlags_StopsAtCommandWord(t *testing.T) {
	cfg, rest := ParseFlags([]string{
		"-base-url", "http://localhost:8000/api",
		"-request-timeout", "45s",
		"login", "--email", "eve@qryptify.io",
	})

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, []string{"login", "--email", "eve@qryptify.io"}, rest)
}

// TestParseFlags_NoConfigFlags verifies that a plain command line is
// returned unchanged.
func TestParseFlags_NoConfigFlags(t *testing.T) {
	cfg, rest := ParseFlags([]string{"history", "--limit", "5"})

	assert.Empty(t, cfg.API.BaseURL)
	assert.Equal(t, []string{"history", "--limit", "5"}, rest)
}

// TestParseFlags_ConfigAliases verifies that -c and -config populate the
// same JSON path field.
func TestParseFlags_ConfigAliases(t *testing.T) {
	cfg, _ := ParseFlags([]string{"-c", "/tmp/a.json"})
	require.Equal(t, "/tmp/a.json", cfg.JSONFilePath)

	cfg, _ = ParseFlags([]string{"-config", "/tmp/b.json"})
	require.Equal(t, "/tmp/b.json", cfg.JSONFilePath)
}
