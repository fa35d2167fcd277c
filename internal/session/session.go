// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package session owns the client's view of "who is signed in".
//
// The [Session] holder keeps the signed-in user and authentication flag in
// memory, mirrors the bearer credential into persistent storage, and knows
// how to rebuild both after a restart: first from the persisted credential,
// then by exchanging the backend's long-lived cookie, and finally by
// probing the profile endpoint. The probe degrades to a signed-out state
// instead of failing, so startup never breaks on a dead session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/store"
	"github.com/qryptify/qryptify-client/internal/utils"
	"github.com/qryptify/qryptify-client/models"
)

// Session is the client-side authentication state holder.
// All methods are safe for concurrent use.
type Session struct {
	gateway  adapter.BackendGateway
	sessions store.SessionRepository
	logger   *logger.Logger

	mu            sync.RWMutex
	user          *models.User
	authenticated bool
}

// NewSession constructs a Session holder in the signed-out state.
func NewSession(gateway adapter.BackendGateway, sessions store.SessionRepository, logger *logger.Logger) *Session {
	return &Session{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Restore rebuilds the authentication state after a process restart.
//
// It tries the persisted credential first; when that is absent or expired
// it attempts a cookie-for-bearer exchange against the backend, persisting
// any token it obtains. Either way the outcome is settled by Confirm, so
// Restore never returns an error: a session that cannot be rebuilt simply
// leaves the holder signed out.
func (s *Session) Restore(ctx context.Context) {
	if !s.hasUsableCredential(ctx) {
		s.exchangeCookieForToken(ctx)
	}
	s.Confirm(ctx)
}

// Confirm settles the authentication flag by probing the profile endpoint.
// A successful probe marks the session authenticated and caches the
// returned user; any failure degrades to the signed-out state. Confirm
// never returns an error.
func (s *Session) Confirm(ctx context.Context) {
	env, err := s.gateway.UserDetails(ctx)
	if err != nil || !env.OK() || env.User == nil {
		if err != nil {
			s.logger.Debug().Err(err).Msg("session probe failed, treating as signed out")
		}
		s.reset()
		return
	}

	s.mu.Lock()
	s.user = env.User
	s.authenticated = true
	s.mu.Unlock()
}

// Set installs the outcome of a successful login or signup: the user is
// cached in memory and the access token, when present, is written through
// to persistent storage. A persistence failure is logged, not returned;
// the in-memory session stays valid for the life of the process.
func (s *Session) Set(ctx context.Context, env models.Envelope) {
	s.mu.Lock()
	s.user = env.User
	s.authenticated = env.User != nil
	s.mu.Unlock()

	if env.Access == "" {
		return
	}

	cred := models.Credential{Access: env.Access, SavedAt: time.Now()}
	if exp, err := utils.TokenExpiry(env.Access); err == nil {
		cred.ExpiresAt = exp
	}
	if err := s.sessions.SaveCredential(ctx, cred); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist login credential")
	}
}

// Logout signs out: the backend session is invalidated best-effort, and
// local state is cleared unconditionally — a backend failure must never
// leave a dead credential behind on this machine.
func (s *Session) Logout(ctx context.Context) {
	if _, err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("backend logout failed, clearing local state anyway")
	}

	if err := s.sessions.ClearCredential(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted credential")
	}
	s.reset()
}

// User returns the signed-in user, or nil when signed out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a confirmed session is active.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) reset() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Session) hasUsableCredential(ctx context.Context) bool {
	cred, err := s.sessions.LoadCredential(ctx)
	if err != nil {
		return false
	}
	return !utils.IsTokenExpired(cred.Access)
}

// exchangeCookieForToken asks the backend to mint a bearer token from the
// cookie session left by a previous login. Best-effort: without a live
// cookie the exchange fails and Confirm settles the state as signed out.
func (s *Session) exchangeCookieForToken(ctx context.Context) {
	env, err := s.gateway.GetAccessToken(ctx)
	if err != nil || !env.OK() {
		return
	}

	access := env.Access
	if access == "" {
		access = env.Token
	}
	if access == "" {
		return
	}

	cred := models.Credential{Access: access, SavedAt: time.Now()}
	if exp, tokenErr := utils.TokenExpiry(access); tokenErr == nil {
		cred.ExpiresAt = exp
	}
	if err = s.sessions.SaveCredential(ctx, cred); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist exchanged credential")
	}
}
