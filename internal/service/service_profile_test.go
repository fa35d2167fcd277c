package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/mock"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/models"
)

func newProfileHarness(t *testing.T) (ProfileService, *session.Session, *mock.MockBackendGateway, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockBackendGateway(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	sess := session.NewSession(gateway, sessions, logger.Nop())
	return NewProfileService(sess, gateway, logger.Nop()), sess, gateway, sessions
}

func strPtr(s string) *string { return &s }

func TestProfileDetails(t *testing.T) {
	svc, _, gateway, _ := newProfileHarness(t)

	gateway.EXPECT().UserDetails(gomock.Any()).Return(models.Envelope{
		Status: true,
		User:   &models.User{Username: "eve", Email: "eve@qryptify.io"},
	}, nil)

	user, err := svc.Details(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eve", user.Username)
}

func TestProfileUpdateRejectsEmptyPatch(t *testing.T) {
	svc, _, _, _ := newProfileHarness(t)

	_, err := svc.Update(context.Background(), models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestProfileUpdateSendsOnlyChangedFields(t *testing.T) {
	svc, _, gateway, _ := newProfileHarness(t)

	patch := models.ProfileUpdate{FirstName: strPtr("Evelyn")}
	updated := &models.User{Username: "eve", FirstName: "Evelyn"}

	gateway.EXPECT().UpdateProfile(gomock.Any(), patch).Return(models.Envelope{
		Status: true,
		User:   updated,
	}, nil)
	// Update refreshes the cached session user from the backend echo.
	gateway.EXPECT().UserDetails(gomock.Any()).Return(models.Envelope{
		Status: true,
		User:   updated,
	}, nil)

	user, err := svc.Update(context.Background(), patch)
	require.NoError(t, err)
	assert.Equal(t, "Evelyn", user.FirstName)
}

func TestProfileDeleteClearsSession(t *testing.T) {
	svc, sess, gateway, sessions := newProfileHarness(t)

	sess.Set(context.Background(), models.Envelope{
		Status: true,
		User:   &models.User{Username: "eve"},
	})

	gateway.EXPECT().DeleteAccount(gomock.Any()).Return(models.Envelope{Status: true}, nil)
	gateway.EXPECT().Logout(gomock.Any()).Return(models.Envelope{Status: true}, nil)
	sessions.EXPECT().ClearCredential(gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(context.Background()))
	assert.False(t, sess.Authenticated())
}

func TestProfileDeleteUnauthorizedReportsNotSignedIn(t *testing.T) {
	svc, sess, gateway, sessions := newProfileHarness(t)

	sess.Set(context.Background(), models.Envelope{
		Status: true,
		User:   &models.User{Username: "eve"},
	})

	gateway.EXPECT().DeleteAccount(gomock.Any()).Return(models.Envelope{}, adapter.ErrUnauthorized)
	gateway.EXPECT().Logout(gomock.Any()).Return(models.Envelope{}, adapter.ErrUnauthorized)
	sessions.EXPECT().ClearCredential(gomock.Any()).Return(nil)

	err := svc.Delete(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, sess.Authenticated(), "stale local session must still be dropped")
}
