package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/models"
)

const minPasswordLength = 6

type authService struct {
	session *session.Session
	gateway adapter.BackendGateway
	logger  *logger.Logger
}

func NewAuthService(sess *session.Session, gateway adapter.BackendGateway, logger *logger.Logger) AuthService {
	return &authService{session: sess, gateway: gateway, logger: logger}
}

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, ErrEmailRequired
	}
	if password == "" {
		return models.User{}, ErrPasswordRequired
	}

	env, err := a.gateway.Login(ctx, models.LoginRequest{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	if !env.OK() {
		return models.User{}, declined(env)
	}

	a.session.Set(ctx, env)
	a.logger.Info().Str("email", email).Msg("signed in")

	if env.User == nil {
		return models.User{}, nil
	}
	return *env.User, nil
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	// The backend enforces this too; checking locally saves the round
	// trip and gives a clearer error.
	caller := a.session.User()
	if !a.session.Authenticated() || caller == nil {
		return ErrNotAuthenticated
	}
	if caller.Role != models.RoleAdmin {
		return ErrAdminOnly
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return ErrEmailRequired
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if req.Role != "" && !req.Role.Valid() {
		return fmt.Errorf("unknown role %q", req.Role)
	}

	env, err := a.gateway.Signup(ctx, req)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if !env.OK() {
		return declined(env)
	}

	a.logger.Info().Str("username", req.Username).Msg("account created")
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, current, newPassword, confirm string) error {
	if current == "" {
		return fmt.Errorf("%w: current password", ErrPasswordRequired)
	}
	if err := validateNewPassword(newPassword, confirm); err != nil {
		return err
	}
	if newPassword == current {
		return ErrPasswordReused
	}

	env, err := a.gateway.ResetPassword(ctx, models.ResetPasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if !env.OK() {
		return declined(env)
	}
	return nil
}

func (a *authService) ForgotPassword(ctx context.Context, email, newPassword, confirm string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if err := validateNewPassword(newPassword, confirm); err != nil {
		return err
	}

	env, err := a.gateway.ForgotPassword(ctx, models.ForgotPasswordRequest{
		Email:           email,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	if !env.OK() {
		return declined(env)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.logger.Info().Msg("signed out")
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validateNewPassword(newPassword, confirm string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// declined converts a falsy backend envelope into an error carrying the
// backend's own message.
func declined(env models.Envelope) error {
	if env.Message == "" {
		return ErrDeclined
	}
	return fmt.Errorf("%w: %s", ErrDeclined, env.Message)
}
