package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/models"
)

type profileService struct {
	session *session.Session
	gateway adapter.BackendGateway
	logger  *logger.Logger
}

func NewProfileService(sess *session.Session, gateway adapter.BackendGateway, logger *logger.Logger) ProfileService {
	return &profileService{session: sess, gateway: gateway, logger: logger}
}

func (p *profileService) Details(ctx context.Context) (models.User, error) {
	env, err := p.gateway.UserDetails(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile: %w", err)
	}
	if !env.OK() || env.User == nil {
		return models.User{}, declined(env)
	}
	return *env.User, nil
}

func (p *profileService) Update(ctx context.Context, patch models.ProfileUpdate) (models.User, error) {
	if patch.Empty() {
		return models.User{}, ErrNothingToUpdate
	}

	env, err := p.gateway.UpdateProfile(ctx, patch)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	if !env.OK() {
		return models.User{}, declined(env)
	}

	// The backend echoes the updated profile; refresh the cached
	// session user from it when present.
	if env.User != nil {
		p.session.Confirm(ctx)
		return *env.User, nil
	}
	return p.Details(ctx)
}

func (p *profileService) Delete(ctx context.Context) error {
	env, err := p.gateway.DeleteAccount(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		// The backend refused the deletion, so the account still exists.
		// The credential is spent either way; drop the local session.
		p.session.Logout(ctx)
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if !env.OK() {
		return declined(env)
	}

	// The account is gone; local session state must follow.
	p.session.Logout(ctx)
	p.logger.Info().Msg("account deleted")
	return nil
}
