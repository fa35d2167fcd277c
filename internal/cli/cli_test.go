package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/mock"
	"github.com/qryptify/qryptify-client/internal/service"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/models"
)

type cliHarness struct {
	auth     *mock.MockAuthService
	profile  *mock.MockProfileService
	analysis *mock.MockAnalysisService
	support  *mock.MockSupportService
	mail     *mock.MockMailService
	gateway  *mock.MockBackendGateway
	sessions *mock.MockSessionRepository

	session *session.Session
	out     bytes.Buffer
	in      bytes.Buffer
	cli     *CLI
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &cliHarness{
		auth:     mock.NewMockAuthService(ctrl),
		profile:  mock.NewMockProfileService(ctrl),
		analysis: mock.NewMockAnalysisService(ctrl),
		support:  mock.NewMockSupportService(ctrl),
		mail:     mock.NewMockMailService(ctrl),
		gateway:  mock.NewMockBackendGateway(ctrl),
		sessions: mock.NewMockSessionRepository(ctrl),
	}
	h.session = session.NewSession(h.gateway, h.sessions, logger.Nop())

	services := &service.Services{
		Auth:     h.auth,
		Profile:  h.profile,
		Analysis: h.analysis,
		Support:  h.support,
		Mail:     h.mail,
	}
	h.cli = New(services, h.session, "test", &h.in, &h.out)
	return h
}

func (h *cliHarness) run(args ...string) error {
	root := h.cli.NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// ── auth commands ───────────────────────────────────────────────────────────

func TestLoginCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.auth.EXPECT().Login(gomock.Any(), "eve@qryptify.io", "hunter22", true).
		Return(models.User{Username: "eve", Role: models.RoleResearcher}, nil)

	err := h.run("login", "--email", "eve@qryptify.io", "--password", "hunter22", "--remember")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Signed in as eve (researcher)")
}

func TestLoginCommandPromptsForPassword(t *testing.T) {
	h := newCLIHarness(t)
	h.in.WriteString("hunter22\n")

	h.auth.EXPECT().Login(gomock.Any(), "eve@qryptify.io", "hunter22", false).
		Return(models.User{Username: "eve"}, nil)

	err := h.run("login", "--email", "eve@qryptify.io")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Password: ")
}

func TestLogoutCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.auth.EXPECT().Logout(gomock.Any())

	require.NoError(t, h.run("logout"))
	assert.Contains(t, h.out.String(), "Signed out.")
}

func TestWhoamiSignedOut(t *testing.T) {
	h := newCLIHarness(t)

	// Restore: no persisted credential, cookie exchange fails, probe fails.
	h.sessions.EXPECT().LoadCredential(gomock.Any()).Return(models.Credential{}, assert.AnError)
	h.gateway.EXPECT().GetAccessToken(gomock.Any()).Return(models.Envelope{}, assert.AnError)
	h.gateway.EXPECT().UserDetails(gomock.Any()).Return(models.Envelope{}, assert.AnError)

	require.NoError(t, h.run("whoami"))
	assert.Contains(t, h.out.String(), "Not signed in.")
}

func TestSignupCommand(t *testing.T) {
	h := newCLIHarness(t)

	// Restore path.
	h.sessions.EXPECT().LoadCredential(gomock.Any()).Return(models.Credential{}, assert.AnError)
	h.gateway.EXPECT().GetAccessToken(gomock.Any()).Return(models.Envelope{}, assert.AnError)
	h.gateway.EXPECT().UserDetails(gomock.Any()).Return(models.Envelope{
		Status: true,
		User:   &models.User{Username: "boss", Role: models.RoleAdmin},
	}, nil)

	h.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req models.SignupRequest) error {
			assert.Equal(t, "newbie", req.Username)
			assert.Equal(t, models.RoleAuditor, req.Role)
			require.NotNil(t, req.Limit)
			assert.Equal(t, 50, *req.Limit)
			return nil
		})

	err := h.run("signup",
		"--username", "newbie",
		"--email", "new@qryptify.io",
		"--password", "secret1",
		"--role", "auditor",
		"--limit", "50",
	)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Account newbie created.")
}

// ── password commands ───────────────────────────────────────────────────────

func TestPasswordResetCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.auth.EXPECT().ResetPassword(gomock.Any(), "old-secret", "new-secret", "new-secret").Return(nil)

	err := h.run("password", "reset", "--current", "old-secret", "--new", "new-secret", "--confirm", "new-secret")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Password updated.")
}

func TestPasswordForgotCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.auth.EXPECT().ForgotPassword(gomock.Any(), "eve@qryptify.io", "new-secret", "new-secret").Return(nil)

	err := h.run("password", "forgot", "--email", "eve@qryptify.io", "--new", "new-secret", "--confirm", "new-secret")
	require.NoError(t, err)
}

func TestPasswordResetValidationErrorSurfaces(t *testing.T) {
	h := newCLIHarness(t)

	h.auth.EXPECT().ResetPassword(gomock.Any(), "a", "b", "c").Return(service.ErrPasswordMismatch)

	err := h.run("password", "reset", "--current", "a", "--new", "b", "--confirm", "c")
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)
}

// ── account commands ────────────────────────────────────────────────────────

func TestAccountShowCommand(t *testing.T) {
	h := newCLIHarness(t)

	limit := 100
	h.profile.EXPECT().Details(gomock.Any()).Return(models.User{
		Username: "eve",
		Email:    "eve@qryptify.io",
		Role:     models.RoleResearcher,
		Phone:    "+49123",
		Limit:    &limit,
	}, nil)

	require.NoError(t, h.run("account", "show"))
	out := h.out.String()
	assert.Contains(t, out, "eve@qryptify.io")
	assert.Contains(t, out, "100 analyses/month")
}

func TestAccountUpdateSendsOnlyChangedFlags(t *testing.T) {
	h := newCLIHarness(t)

	h.profile.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, patch models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, patch.FirstName)
			assert.Equal(t, "Evelyn", *patch.FirstName)
			assert.Nil(t, patch.LastName)
			assert.Nil(t, patch.Username)
			assert.Nil(t, patch.Phone)
			return models.User{Username: "eve"}, nil
		})

	require.NoError(t, h.run("account", "update", "--first-name", "Evelyn"))
}

func TestAccountDeleteNeedsConfirmation(t *testing.T) {
	h := newCLIHarness(t)
	h.in.WriteString("no\n")

	err := h.run("account", "delete")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
}

func TestAccountDeleteConfirmed(t *testing.T) {
	h := newCLIHarness(t)

	h.profile.EXPECT().Delete(gomock.Any()).Return(nil)

	require.NoError(t, h.run("account", "delete", "--yes"))
	assert.Contains(t, h.out.String(), "Account deleted.")
}

// ── analysis commands ───────────────────────────────────────────────────────

func TestAnalyzeCommand(t *testing.T) {
	h := newCLIHarness(t)

	path := filepath.Join(t.TempDir(), "payload.enc")
	require.NoError(t, os.WriteFile(path, []byte("ciphertext"), 0o600))

	h.analysis.EXPECT().Analyze(gomock.Any(), "payload.enc", gomock.Any()).
		Return(models.AnalysisReport{Algorithm: "Kyber", Category: "post-quantum", Confidence: 88.5}, nil)

	require.NoError(t, h.run("analyze", path))
	out := h.out.String()
	assert.Contains(t, out, "Kyber")
	assert.Contains(t, out, "post-quantum")
	assert.Contains(t, out, "88.5%")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	h := newCLIHarness(t)

	err := h.run("analyze", filepath.Join(t.TempDir(), "nope.enc"))
	assert.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.analysis.EXPECT().History(gomock.Any(), "AES", 5).Return([]models.AnalysisRecord{
		{FileName: "a.enc", Algorithm: "AES", Confidence: 97.4, AnalyzedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
	}, nil)

	require.NoError(t, h.run("history", "--algorithm", "AES", "--limit", "5"))
	out := h.out.String()
	assert.Contains(t, out, "a.enc")
	assert.Contains(t, out, "97.4%")
}

func TestHistoryCommandEmpty(t *testing.T) {
	h := newCLIHarness(t)

	h.analysis.EXPECT().History(gomock.Any(), "", 0).Return(nil, nil)

	require.NoError(t, h.run("history"))
	assert.Contains(t, h.out.String(), "No analyses recorded yet.")
}

// ── support commands ────────────────────────────────────────────────────────

func TestChatCommandOneShot(t *testing.T) {
	h := newCLIHarness(t)

	h.support.EXPECT().Ask(gomock.Any(), "how long does analysis take").
		Return("Analysis times vary depending on data size, usually completing within seconds to a few minutes.")

	require.NoError(t, h.run("chat", "how", "long", "does", "analysis", "take"))
	assert.Contains(t, h.out.String(), "seconds to a few minutes")
}

func TestChatCommandInteractive(t *testing.T) {
	h := newCLIHarness(t)
	h.in.WriteString("is there a free trial\n\n")

	h.support.EXPECT().Ask(gomock.Any(), "is there a free trial").Return("Yes, new users can try Qryptify with limited features before subscribing.")

	require.NoError(t, h.run("chat"))
	out := h.out.String()
	assert.True(t, strings.Contains(out, "Hi! How can I assist you with Qryptify today?"))
	assert.Contains(t, out, "limited features")
	assert.Contains(t, out, "Bye.")
}

func TestContactCommand(t *testing.T) {
	h := newCLIHarness(t)

	h.mail.EXPECT().Send(gomock.Any(), models.MailRequest{
		Name:    "Eve",
		Email:   "eve@qryptify.io",
		Message: "The result page shows no score.",
	}).Return(nil)

	err := h.run("contact", "--name", "Eve", "--email", "eve@qryptify.io", "--message", "The result page shows no score.")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Message sent.")
}
