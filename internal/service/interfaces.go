// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package service implements the client-side business rules on top of the
// backend gateway: input validation, the privileged-signup gate, local
// history bookkeeping, and the FAQ-then-advisor support ladder. Services
// return plain values and wrapped sentinel errors; presentation is left to
// the callers.
package service

import (
	"context"
	"io"

	"github.com/qryptify/qryptify-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns sign-in, account creation, and password flows.
type AuthService interface {
	// Login authenticates with e-mail and password and installs the
	// resulting session. Returns the signed-in user.
	Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error)

	// Signup creates a new account. Privileged: the signed-in caller
	// must hold the admin role, checked locally before the round trip.
	Signup(ctx context.Context, req models.SignupRequest) error

	// ResetPassword changes the signed-in account's password after
	// local validation (all fields present, confirmation matching,
	// new password distinct from current and at least 6 characters).
	ResetPassword(ctx context.Context, current, newPassword, confirm string) error

	// ForgotPassword resets a forgotten password by e-mail identity,
	// under the same password rules minus the current-password check.
	ForgotPassword(ctx context.Context, email, newPassword, confirm string) error

	// Logout signs out of the backend and clears all local state.
	Logout(ctx context.Context)
}

// ProfileService owns the signed-in account's profile.
type ProfileService interface {
	// Details fetches the current profile from the backend.
	Details(ctx context.Context) (models.User, error)

	// Update sends only the changed fields. An empty patch is
	// rejected locally with [ErrNothingToUpdate].
	Update(ctx context.Context, patch models.ProfileUpdate) (models.User, error)

	// Delete removes the account permanently and clears the local
	// session.
	Delete(ctx context.Context) error
}

// AnalysisService owns file analysis and its local history.
type AnalysisService interface {
	// Analyze uploads ciphertext for classification and records the
	// result in local history. The content is streamed as-is.
	Analyze(ctx context.Context, fileName string, content io.Reader) (models.AnalysisReport, error)

	// History lists past analyses, newest first, optionally filtered
	// by detected algorithm and capped at limit entries.
	History(ctx context.Context, algorithm string, limit int) ([]models.AnalysisRecord, error)
}

// Advisor generates a free-form reply to a product question. Implemented
// by the Gemini-backed assistant; nil-able when no API key is configured.
type Advisor interface {
	Ask(ctx context.Context, question string) (string, error)
}

// SupportService answers product questions: the offline FAQ catalog
// first, the advisor model as fallback.
type SupportService interface {
	// Ask returns the best available answer for question. It never
	// returns an error for unanswerable input, only the canned
	// fallback text.
	Ask(ctx context.Context, question string) string
}

// MailService submits the contact form.
type MailService interface {
	// Send validates and submits a contact-form message.
	Send(ctx context.Context, req models.MailRequest) error
}
