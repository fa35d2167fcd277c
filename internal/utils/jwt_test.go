// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// ── IsTokenExpired ──────────────────────────────────────────────────────────

func TestIsTokenExpired_ValidFutureToken(t *testing.T) {
	assert.False(t, IsTokenExpired(signedToken(t, time.Hour)))
}

func TestIsTokenExpired_PastToken(t *testing.T) {
	assert.True(t, IsTokenExpired(signedToken(t, -time.Hour)))
}

// Any token that cannot be decoded must be reported as expired, never valid.
func TestIsTokenExpired_FailsClosedOnGarbage(t *testing.T) {
	garbage := []string{
		"",
		"   ",
		"not-a-jwt",
		"a.b",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9",
		"eyJhbGciOiJIUzI1NiJ9..signature",
		"....",
		"🔐🔐🔐",
		signedToken(t, time.Hour)[5:], // truncated header
	}
	for _, tok := range garbage {
		assert.True(t, IsTokenExpired(tok), "token %q must be treated as expired", tok)
	}
}

func TestIsTokenExpired_NoExpClaim(t *testing.T) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)

	assert.True(t, IsTokenExpired(s))
}

// ── TokenExpiry ─────────────────────────────────────────────────────────────

func TestTokenExpiry_ReturnsClaimValue(t *testing.T) {
	tok := signedToken(t, 30*time.Minute)

	exp, err := TokenExpiry(tok)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)
}

func TestTokenExpiry_GarbageErrors(t *testing.T) {
	_, err := TokenExpiry("definitely not a token")
	require.Error(t, err)
}

// ── ParseBearerToken ────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}
