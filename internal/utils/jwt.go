// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for JWT claim inspection, HTTP client initialization,
// trace ID generation, and other common operations.
package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes tokenString without verifying its signature and
// returns the expiry instant from the exp claim. The client never holds
// the signing key, so an unverified parse is the only option; the backend
// remains the authority on token validity.
//
// Returns an error if the token cannot be decoded or carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString is expired. Any malformed,
// truncated, or otherwise undecodable token is reported as expired; the
// check fails closed, never open.
func IsTokenExpired(tokenString string) bool {
	if strings.TrimSpace(tokenString) == "" {
		return true
	}

	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}

	return exp.Before(time.Now())
}

// ParseBearerToken extracts the raw token from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
