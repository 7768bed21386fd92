package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/common"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// HTTPClient is the concrete Client talking JSON over HTTP.
//
// Token handling mirrors the session lifecycle: the session store pushes
// tokens in via SetTokens after bootstrap/login, and the client reports
// refreshed tokens back through the OnTokensRefreshed hook. When a request
// stays unauthorized even after a refresh attempt, OnAuthFailure fires so the
// session store can tear down.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	onTokensRefreshed func(access, refresh string)
	onAuthFailure     func()
}

// NewHTTPClient constructs a client for the given API base URL
// (e.g. "http://localhost:8080/api").
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// OnTokensRefreshed registers a hook invoked after a successful transparent
// token refresh.
func (c *HTTPClient) OnTokensRefreshed(fn func(access, refresh string)) { c.onTokensRefreshed = fn }

// OnAuthFailure registers a hook invoked when an authenticated request is
// rejected and cannot be recovered by refreshing.
func (c *HTTPClient) OnAuthFailure(fn func()) { c.onAuthFailure = fn }

// SetTokens installs the bearer credentials used for authenticated calls.
func (c *HTTPClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

// ClearTokens drops the bearer credentials.
func (c *HTTPClient) ClearTokens() { c.SetTokens("", "") }

func (c *HTTPClient) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// sendOnce performs a single HTTP exchange and returns the raw body and
// status. Network-level failures map to ErrUnavailable.
func (c *HTTPClient) sendOnce(ctx context.Context, method, path, contentType string, body []byte, authed bool) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if access, _ := c.tokens(); access != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+access)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return b, resp.StatusCode, nil
}

// send wraps sendOnce with two recoveries: a bounded retry of transient GET
// failures, and a single token refresh + replay on 401.
func (c *HTTPClient) send(ctx context.Context, method, path, contentType string, body []byte, authed bool) ([]byte, int, error) {
	var (
		respBody []byte
		status   int
	)

	do := func(ctx context.Context) error {
		var err error
		respBody, status, err = c.sendOnce(ctx, method, path, contentType, body, authed)
		if err != nil {
			if method == http.MethodGet {
				return retry.RetryableError(err)
			}
			return err
		}
		if status >= http.StatusInternalServerError && method == http.MethodGet {
			return retry.RetryableError(fmt.Errorf("%w: status %d", ErrUnavailable, status))
		}
		return nil
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	if err := retry.Do(ctx, backoff, do); err != nil {
		return nil, status, err
	}

	if status == http.StatusUnauthorized && authed {
		if c.refresh(ctx) {
			var err error
			respBody, status, err = c.sendOnce(ctx, method, path, contentType, body, authed)
			if err != nil {
				return nil, status, err
			}
		}
		if status == http.StatusUnauthorized {
			c.log.Warn(ctx, "authenticated request rejected", "path", path)
			if c.onAuthFailure != nil {
				c.onAuthFailure()
			}
		}
	}

	return respBody, status, nil
}

// refresh exchanges the refresh token for a new token pair. Returns true on
// success.
func (c *HTTPClient) refresh(ctx context.Context) bool {
	_, refreshToken := c.tokens()
	if refreshToken == "" {
		return false
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return false
	}

	body, status, err := c.sendOnce(ctx, http.MethodPost, "/auth/refresh-token", "application/json", payload, false)
	if err != nil || status != http.StatusOK {
		return false
	}

	var env envelope[struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}]
	if err := json.Unmarshal(body, &env); err != nil || !env.Success {
		return false
	}

	c.SetTokens(env.Data.Token, env.Data.RefreshToken)
	if c.onTokensRefreshed != nil {
		c.onTokensRefreshed(env.Data.Token, env.Data.RefreshToken)
	}
	c.log.Info(ctx, "access token refreshed")
	return true
}

// mapStatus converts a non-2xx response to a sentinel error, preferring the
// envelope message for plain client errors.
func mapStatus(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	case status >= http.StatusBadRequest:
		var env envelope[json.RawMessage]
		if err := json.Unmarshal(body, &env); err == nil {
			return fmt.Errorf("request rejected: %s", env.errText())
		}
		return fmt.Errorf("request rejected: status %d", status)
	default:
		return nil
	}
}

// callJSON performs a JSON request and decodes the envelope's data field
// into T.
func callJSON[T any](ctx context.Context, c *HTTPClient, method, path string, in any, authed bool) (T, error) {
	var zero T

	var payload []byte
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return zero, err
		}
		payload = b
		contentType = "application/json"
	}

	body, status, err := c.send(ctx, method, path, contentType, payload, authed)
	if err != nil {
		return zero, err
	}
	if err := mapStatus(status, body); err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		return zero, fmt.Errorf("request rejected: %s", env.errText())
	}
	return env.Data, nil
}

// callNoResult is callJSON for operations whose data payload is irrelevant.
func callNoResult(ctx context.Context, c *HTTPClient, method, path string, in any, authed bool) error {
	_, err := callJSON[json.RawMessage](ctx, c, method, path, in, authed)
	return err
}

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	res, err := callJSON[AuthResult](ctx, c, http.MethodPost, "/auth/login", req, false)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return callNoResult(ctx, c, http.MethodPost, "/auth/register", req, false)
}

func (c *HTTPClient) CompleteRegistration(ctx context.Context, req models.CompleteRegistrationRequest) (*AuthResult, error) {
	res, err := callJSON[AuthResult](ctx, c, http.MethodPost, "/auth/complete-registration", req, false)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return callNoResult(ctx, c, http.MethodPost, "/auth/forgot-password", req, false)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return callNoResult(ctx, c, http.MethodPost, "/auth/reset-password", req, false)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return callNoResult(ctx, c, http.MethodPost, "/auth/logout", nil, true)
}

// --- jobs ---

func (c *HTTPClient) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	return callJSON[[]models.JobRecord](ctx, c, http.MethodGet, "/jobs", nil, true)
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (*models.JobRecord, error) {
	res, err := callJSON[models.JobRecord](ctx, c, http.MethodGet, "/jobs/"+id, nil, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListCompanyJobs(ctx context.Context, companyID string) ([]models.JobRecord, error) {
	return callJSON[[]models.JobRecord](ctx, c, http.MethodGet, "/jobs/company/"+companyID, nil, true)
}

func (c *HTTPClient) CreateJob(ctx context.Context, req models.JobRequest) (*models.JobRecord, error) {
	res, err := callJSON[models.JobRecord](ctx, c, http.MethodPost, "/jobs", req, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateJob(ctx context.Context, id string, req models.JobRequest) (*models.JobRecord, error) {
	res, err := callJSON[models.JobRecord](ctx, c, http.MethodPut, "/jobs/"+id, req, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.JobRecord, error) {
	payload := map[string]models.JobStatus{"status": status}
	res, err := callJSON[models.JobRecord](ctx, c, http.MethodPut, "/jobs/"+id, payload, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteJob(ctx context.Context, id string) error {
	return callNoResult(ctx, c, http.MethodDelete, "/jobs/"+id, nil, true)
}

// --- applications ---

func (c *HTTPClient) CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	res, err := callJSON[models.Application](ctx, c, http.MethodPost, "/applications", req, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	return callJSON[[]models.Application](ctx, c, http.MethodGet, "/applications/job/"+jobID, nil, true)
}

func (c *HTTPClient) ListMyApplications(ctx context.Context) ([]models.Application, error) {
	return callJSON[[]models.Application](ctx, c, http.MethodGet, "/applications/me", nil, true)
}

func (c *HTTPClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	res, err := callJSON[models.Application](ctx, c, http.MethodGet, "/applications/"+id, nil, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	payload := map[string]models.ApplicationStatus{"status": status}
	res, err := callJSON[models.Application](ctx, c, http.MethodPut, "/applications/"+id, payload, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id string) error {
	return callNoResult(ctx, c, http.MethodDelete, "/applications/"+id, nil, true)
}

// --- profile ---

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	res, err := callJSON[models.User](ctx, c, http.MethodGet, "/users/profile", nil, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProfile submits the profile edit as multipart form data so avatar and
// resume files can ride along with the text fields.
func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if req.Name != "" {
		if err := w.WriteField("name", req.Name); err != nil {
			return nil, err
		}
	}
	for field, path := range map[string]string{"avatar": req.AvatarPath, "resume": req.ResumePath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		part, err := w.CreateFormFile(field, filepath.Base(path))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	body, status, err := c.send(ctx, http.MethodPut, "/users/profile", w.FormDataContentType(), buf.Bytes(), true)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(status, body); err != nil {
		return nil, err
	}

	var env envelope[models.User]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("request rejected: %s", env.errText())
	}
	return &env.Data, nil
}

// --- companies ---

func (c *HTTPClient) CreateCompany(ctx context.Context, req models.CompanyRequest) (*models.Company, error) {
	res, err := callJSON[models.Company](ctx, c, http.MethodPost, "/companies", req, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	res, err := callJSON[models.Company](ctx, c, http.MethodGet, "/companies/"+id, nil, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return callJSON[[]models.Company](ctx, c, http.MethodGet, "/companies", nil, true)
}

func (c *HTTPClient) UpdateCompany(ctx context.Context, id string, req models.CompanyRequest) (*models.Company, error) {
	res, err := callJSON[models.Company](ctx, c, http.MethodPut, "/companies/"+id, req, true)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteCompany(ctx context.Context, id string) error {
	return callNoResult(ctx, c, http.MethodDelete, "/companies/"+id, nil, true)
}

var _ Client = (*HTTPClient)(nil)
