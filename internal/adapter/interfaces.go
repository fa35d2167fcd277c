// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package adapter provides the transport layer for communicating with the
// Qryptify backend.
//
// The primary abstraction is [BackendGateway]: one generic dispatch entry
// point ([BackendGateway.Do]) plus a typed wrapper per backend endpoint.
// The dispatcher owns everything the HTTP contract requires — endpoint
// normalization, bearer-credential resolution with silent refresh, the
// refresh exemption list, CSRF header attachment on mutating verbs, and
// JSON-vs-multipart body exclusivity. Failures are always returned as
// values; nothing panics across the package boundary.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/qryptify/qryptify-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_gateway_mock.go -package=mock

// BackendGateway defines communication with the Qryptify backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BackendGateway interface {
	// Do performs one dispatch per the backend HTTP contract and decodes
	// the JSON response into the loose [models.Envelope]. All typed
	// methods below are thin wrappers over Do.
	Do(ctx context.Context, req Request) (models.Envelope, error)

	// Login authenticates with e-mail and password. POST login.
	// Exempt from silent refresh.
	Login(ctx context.Context, req models.LoginRequest) (models.Envelope, error)

	// Signup creates a new account. POST signup. Privileged; exempt
	// from silent refresh.
	Signup(ctx context.Context, req models.SignupRequest) (models.Envelope, error)

	// CSRFToken primes the anti-forgery cookie. GET csrf-token. Exempt
	// from silent refresh.
	CSRFToken(ctx context.Context) (models.Envelope, error)

	// UserDetails fetches the signed-in profile; doubles as the session
	// probe. GET user-details.
	UserDetails(ctx context.Context) (models.Envelope, error)

	// GetAccessToken exchanges the backend's access cookie for a bearer
	// token. GET get-access-token. Used when restoring a session whose
	// persisted credential is gone or stale.
	GetAccessToken(ctx context.Context) (models.Envelope, error)

	// RefreshToken obtains a fresh bearer token from the long-lived
	// cookie session. GET refresh-token. Exempt from silent refresh
	// (refreshing before a refresh would be circular).
	RefreshToken(ctx context.Context) (models.Envelope, error)

	// Logout invalidates the server-side session. GET logout. Exempt
	// from silent refresh: logging out must proceed even with an
	// expired token.
	Logout(ctx context.Context) (models.Envelope, error)

	// ForgotPassword resets a forgotten password. PATCH forgot-password.
	// Exempt from silent refresh.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.Envelope, error)

	// ResetPassword changes the signed-in account's password.
	// PATCH reset-password.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.Envelope, error)

	// UpdateProfile patches the changed profile fields only.
	// PATCH update-profile.
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Envelope, error)

	// DeleteAccount removes the account. DELETE user-account-delete.
	// Exempt from silent refresh: deletion proceeds even with an
	// expired token.
	DeleteAccount(ctx context.Context) (models.Envelope, error)

	// IssueMail submits the contact form. POST issue-mail.
	IssueMail(ctx context.Context, req models.MailRequest) (models.Envelope, error)

	// AnalyzeFile uploads an encrypted file as multipart form data to
	// POST analyze-input-file and returns the classification report.
	// The body is sent raw; it is never JSON re-encoded.
	AnalyzeFile(ctx context.Context, fileName string, content io.Reader) (models.AnalysisReport, error)
}
