package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/qryptify/qryptify-client/internal/config"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/store"
	"github.com/qryptify/qryptify-client/internal/utils"
	"github.com/qryptify/qryptify-client/models"
)

// Backend endpoint names. The dispatcher resolves each to
// {base}/{endpoint}/ after normalization.
const (
	EndpointLogin          = "login"
	EndpointSignup         = "signup"
	EndpointRegister       = "register"
	EndpointCSRFToken      = "csrf-token"
	EndpointUserDetails    = "user-details"
	EndpointGetAccessToken = "get-access-token"
	EndpointRefreshToken   = "refresh-token"
	EndpointLogout         = "logout"
	EndpointForgotPassword = "forgot-password"
	EndpointResetPassword  = "reset-password"
	EndpointUpdateProfile  = "update-profile"
	EndpointDeleteAccount  = "user-account-delete"
	EndpointIssueMail      = "issue-mail"
	EndpointAnalyzeFile    = "analyze-input-file"
)

// exemptEndpoints never trigger a silent refresh when no usable credential
// is at hand: refreshing before login or signup is circular, refreshing
// for the refresh call itself doubly so, and logout or account deletion
// must proceed even with an expired token. These requests go out without
// a bearer header when none is available.
var exemptEndpoints = map[string]struct{}{
	EndpointLogin:          {},
	EndpointSignup:         {},
	EndpointRegister:       {},
	EndpointCSRFToken:      {},
	EndpointRefreshToken:   {},
	EndpointLogout:         {},
	EndpointForgotPassword: {},
	EndpointDeleteAccount:  {},
}

// Request is the descriptor callers pass to [BackendGateway.Do]: endpoint
// name, HTTP verb, and at most one of a JSON-serializable Body or a raw
// File upload. Token, when set, overrides the stored credential for this
// single dispatch.
type Request struct {
	Endpoint string
	Method   string
	Body     any
	File     *FileUpload
	Token    string
}

// FileUpload is a raw multipart payload. It is sent as-is under the
// backend's expected "file" form field; the transport sets the multipart
// boundary, so no content type is forced on the request.
type FileUpload struct {
	FileName string
	Reader   io.Reader
}

type httpBackendGateway struct {
	client   *utils.HTTPClient
	sessions store.SessionRepository

	baseURL        string
	csrfCookieName string

	// refreshMu serializes silent refresh so concurrent dispatches
	// cannot fire duplicate refresh-token calls.
	refreshMu sync.Mutex

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPBackendGateway constructs the HTTP/REST implementation of
// [BackendGateway]. It normalises and validates the base URL from
// apiCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. The client's cookie jar carries
// the backend's session and CSRF cookies across calls.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendGateway(apiCfg config.ClientAPI, sessions store.SessionRepository, logger *logger.Logger) (BackendGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	return &httpBackendGateway{
		client:         client,
		sessions:       sessions,
		baseURL:        baseURL,
		csrfCookieName: apiCfg.CSRFCookieName,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizeEndpoint strips surrounding whitespace and slashes so that
// "user-details", "user-details/" and "user-details//" all resolve to the
// same URL.
func normalizeEndpoint(endpoint string) string {
	return strings.Trim(strings.TrimSpace(endpoint), "/")
}

// Do implements [BackendGateway]. It dispatches req and decodes the JSON
// response body into a [models.Envelope]. Failed responses and transport
// errors come back as returned errors wrapping the sentinels in errors.go;
// an unauthorized response additionally clears the persisted credential so
// the next call retries refresh instead of resending a dead token.
func (h *httpBackendGateway) Do(ctx context.Context, req Request) (models.Envelope, error) {
	resp, err := h.dispatch(ctx, req)
	if err != nil {
		return models.Envelope{}, err
	}

	var env models.Envelope
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &env); err != nil {
			return models.Envelope{}, fmt.Errorf("decode %s response: %w", normalizeEndpoint(req.Endpoint), err)
		}
	}

	return env, nil
}

func (h *httpBackendGateway) dispatch(ctx context.Context, req Request) (resp *resty.Response, err error) {
	// Nothing may panic across the dispatcher boundary; callers are
	// promised a value, never a crash.
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("dispatch %s: %v", req.Endpoint, r)
		}
	}()

	endpoint := normalizeEndpoint(req.Endpoint)
	traceID := h.ids.Generate()
	log := h.logger.With().
		Str("trace_id", traceID).
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Logger()

	token, err := h.resolveCredential(ctx, endpoint, req.Token)
	if err != nil {
		log.Warn().Err(err).Msg("aborting request: refresh failed")
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", traceID)

	if req.File != nil {
		// Raw upload: the transport picks the multipart boundary, so
		// no content type is set here.
		r.SetFileReader("file", req.File.FileName, req.File.Reader)
	} else {
		r.SetHeader("Content-Type", "application/json")
		if req.Body != nil {
			r.SetBody(req.Body)
		}
	}

	if token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}

	if req.Method != http.MethodGet {
		if csrf := h.client.Cookie(h.baseURL, h.csrfCookieName); csrf != "" {
			r.SetHeader("X-CSRFToken", csrf)
		}
	}

	resp, err = r.Execute(req.Method, "/"+endpoint+"/")
	if err != nil {
		log.Error().Err(err).Msg("transport failure")
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			// Self-healing: a rejected token is assumed stale.
			if clearErr := h.sessions.ClearCredential(ctx); clearErr != nil {
				log.Warn().Err(clearErr).Msg("failed to clear rejected credential")
			}
		}
		log.Debug().Int("status", resp.StatusCode()).Msg("backend returned error status")
		return nil, err
	}

	return resp, nil
}

// resolveCredential determines the bearer token for one dispatch, in
// priority order: the caller's explicit token if not expired, then the
// persisted credential if not expired, then — outside the exemption
// list — a silent refresh. Exempted endpoints proceed without a token
// when none is usable.
func (h *httpBackendGateway) resolveCredential(ctx context.Context, endpoint, explicit string) (string, error) {
	if tok := strings.TrimSpace(explicit); tok != "" && !utils.IsTokenExpired(tok) {
		return tok, nil
	}

	if tok := h.storedToken(ctx); tok != "" {
		return tok, nil
	}

	if _, exempt := exemptEndpoints[endpoint]; exempt {
		return "", nil
	}

	return h.ensureFreshCredential(ctx)
}

// storedToken loads the persisted credential and returns its token string,
// or "" when nothing usable is stored. Expiry is checked fail-closed.
func (h *httpBackendGateway) storedToken(ctx context.Context) string {
	cred, err := h.sessions.LoadCredential(ctx)
	if err != nil {
		return ""
	}
	if utils.IsTokenExpired(cred.Access) {
		return ""
	}
	return cred.Access
}

// ensureFreshCredential performs the silent refresh: one GET to the
// refresh endpoint riding on the long-lived cookie session. The refresh
// outcome is fully known before the caller finalizes its authentication
// header. A second dispatch arriving while a refresh is in flight waits
// and reuses the freshly persisted credential instead of refreshing again.
func (h *httpBackendGateway) ensureFreshCredential(ctx context.Context) (string, error) {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	if tok := h.storedToken(ctx); tok != "" {
		return tok, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/" + EndpointRefreshToken + "/")
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if env.Access == "" {
		return "", errors.New("no access token in refresh response")
	}

	// some deployments hand back the whole Authorization header value
	access := env.Access
	if raw, perr := utils.ParseBearerToken(access); perr == nil {
		access = raw
	}

	h.persistCredential(ctx, access)
	return access, nil
}

// persistCredential mirrors a freshly issued token into the session store.
// Persistence failure is logged, not fatal: the in-flight request still
// carries the new token.
func (h *httpBackendGateway) persistCredential(ctx context.Context, access string) {
	cred := models.Credential{Access: access, SavedAt: time.Now()}
	if exp, err := utils.TokenExpiry(access); err == nil {
		cred.ExpiresAt = exp
	}

	if err := h.sessions.SaveCredential(ctx, cred); err != nil {
		h.logger.Warn().Err(err).Msg("failed to persist refreshed credential")
	}
}

// ── typed endpoint wrappers ─────────────────────────────────────────────────

func (h *httpBackendGateway) Login(ctx context.Context, req models.LoginRequest) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointLogin, Method: http.MethodPost, Body: req})
}

func (h *httpBackendGateway) Signup(ctx context.Context, req models.SignupRequest) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointSignup, Method: http.MethodPost, Body: req})
}

func (h *httpBackendGateway) CSRFToken(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointCSRFToken, Method: http.MethodGet})
}

func (h *httpBackendGateway) UserDetails(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointUserDetails, Method: http.MethodGet})
}

func (h *httpBackendGateway) GetAccessToken(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointGetAccessToken, Method: http.MethodGet})
}

func (h *httpBackendGateway) RefreshToken(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointRefreshToken, Method: http.MethodGet})
}

func (h *httpBackendGateway) Logout(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointLogout, Method: http.MethodGet})
}

func (h *httpBackendGateway) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointForgotPassword, Method: http.MethodPatch, Body: req})
}

func (h *httpBackendGateway) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointResetPassword, Method: http.MethodPatch, Body: req})
}

func (h *httpBackendGateway) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointUpdateProfile, Method: http.MethodPatch, Body: patch})
}

func (h *httpBackendGateway) DeleteAccount(ctx context.Context) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointDeleteAccount, Method: http.MethodDelete})
}

func (h *httpBackendGateway) IssueMail(ctx context.Context, req models.MailRequest) (models.Envelope, error) {
	return h.Do(ctx, Request{Endpoint: EndpointIssueMail, Method: http.MethodPost, Body: req})
}

// AnalyzeFile implements [BackendGateway]. The response body of
// analyze-input-file is the classification report itself rather than the
// usual envelope, so it is decoded separately here.
func (h *httpBackendGateway) AnalyzeFile(ctx context.Context, fileName string, content io.Reader) (models.AnalysisReport, error) {
	resp, err := h.dispatch(ctx, Request{
		Endpoint: EndpointAnalyzeFile,
		Method:   http.MethodPost,
		File:     &FileUpload{FileName: fileName, Reader: content},
	})
	if err != nil {
		return models.AnalysisReport{}, err
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.AnalysisReport{}, fmt.Errorf("decode analyze response: %w", err)
	}
	// A 200 with an explicit status:false means the backend could not
	// process the file (unsupported type, model failure).
	if !env.OK() && env.Message != "" {
		return models.AnalysisReport{}, fmt.Errorf("analysis rejected: %s", env.Message)
	}

	var report models.AnalysisReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.AnalysisReport{}, fmt.Errorf("decode analysis report: %w", err)
	}
	if report.Algorithm == "" {
		return models.AnalysisReport{}, errors.New("analysis response carries no prediction")
	}

	return report, nil
}
