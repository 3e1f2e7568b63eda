package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/badgergram/badgerclient/internal/logging"
	"github.com/badgergram/badgerclient/internal/models"
	"github.com/badgergram/badgerclient/internal/token"
)

const requestIDHeader = "X-Request-ID"

// HTTPClient talks JSON (and one multipart endpoint) to the backend over
// net/http. It attaches the bearer token from the Store on every
// authenticated call and clears it on 401/403.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  *token.Store
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying transport, e.g. to set timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithLogger installs a diagnostic logger; request method, path, status
// and duration are logged at Debug. Bodies are never logged.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, tokens *token.Store, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     logging.NewTextLogger(io.Discard, "error"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// call describes one request: everything do() needs to build, send and
// classify a single atomic exchange.
type call struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	authed      bool
	success     []int
	defaultMsg  string
}

// do performs the exchange and classifies the outcome. Transport failures
// are wrapped in ErrInvalidResponse; 401/403 on authenticated calls clear
// the token and return ErrUnauthorized; any other non-success status
// becomes a *ServerError; a 2xx body that does not parse into out is
// wrapped in ErrDecoding.
func (c *HTTPClient) do(ctx context.Context, cl call, out any) error {
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, cl.body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	if cl.authed {
		if t, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Debug(ctx, "request completed",
		"method", cl.method, "path", cl.path,
		"status", resp.StatusCode, "duration", time.Since(start),
		"request_id", requestID)

	if cl.authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		if cerr := c.tokens.Clear(ctx); cerr != nil {
			c.log.Warn(ctx, "failed to clear persisted token", "error", cerr)
		}
		return ErrUnauthorized
	}

	if !slices.Contains(cl.success, resp.StatusCode) {
		msg := cl.defaultMsg
		var apiResp models.APIResponse
		if err := json.Unmarshal(data, &apiResp); err == nil && apiResp.Message != "" {
			msg = apiResp.Message
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrDecoding, err)
		}
	}
	return nil
}

// doJSON marshals payload (when non-nil) and performs the call with a
// JSON content type.
func (c *HTTPClient) doJSON(ctx context.Context, cl call, payload, out any) error {
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecoding, err)
		}
		cl.body = bytes.NewReader(b)
		cl.contentType = "application/json"
	}
	return c.do(ctx, cl, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	err := c.doJSON(ctx, call{
		method:     http.MethodPost,
		path:       "/api/login",
		success:    []int{http.StatusOK},
		defaultMsg: "login failed",
	}, models.Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response missing token", ErrDecoding)
	}
	if err := c.tokens.Set(ctx, resp.Token); err != nil {
		c.log.Warn(ctx, "failed to persist token", "error", err)
	}
	return &resp.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	var resp models.AuthResponse
	err := c.doJSON(ctx, call{
		method:     http.MethodPost,
		path:       "/api/signup",
		success:    []int{http.StatusOK, http.StatusCreated},
		defaultMsg: "signup failed",
	}, req, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: signup response missing token", ErrDecoding)
	}
	if err := c.tokens.Set(ctx, resp.Token); err != nil {
		c.log.Warn(ctx, "failed to persist token", "error", err)
	}
	return &resp.User, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp models.UserResponse
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/auth/me",
		authed:     true,
		success:    []int{http.StatusOK},
		defaultMsg: "could not load profile",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout revokes the session server-side on a best-effort basis; the
// local token is dropped even when the request fails.
func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/api/auth/logout",
		authed:     true,
		success:    []int{http.StatusOK, http.StatusNoContent},
		defaultMsg: "logout failed",
	}, nil)
	if cerr := c.tokens.Clear(ctx); cerr != nil {
		c.log.Warn(ctx, "failed to clear persisted token", "error", cerr)
	}
	return err
}

func (c *HTTPClient) SendGift(ctx context.Context, req models.SendGiftRequest) (*models.SendGiftResult, error) {
	var resp models.SendGiftResult
	err := c.doJSON(ctx, call{
		method:     http.MethodPost,
		path:       "/api/send-honey-badger",
		authed:     true,
		success:    []int{http.StatusOK, http.StatusCreated},
		defaultMsg: "could not send gift",
	}, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListSentGifts(ctx context.Context) ([]models.Gift, error) {
	var resp models.GiftListResponse
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/honey-badgers",
		authed:     true,
		success:    []int{http.StatusOK},
		defaultMsg: "could not load sent gifts",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

func (c *HTTPClient) ListReceivedGifts(ctx context.Context) ([]models.Gift, error) {
	var resp models.GiftListResponse
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/my-received-gifts",
		authed:     true,
		success:    []int{http.StatusOK},
		defaultMsg: "could not load received gifts",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

func (c *HTTPClient) ListPendingApprovals(ctx context.Context) ([]models.PendingApproval, error) {
	var resp models.ApprovalListResponse
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/my-pending-approvals",
		authed:     true,
		success:    []int{http.StatusOK},
		defaultMsg: "could not load pending approvals",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.PendingApprovals, nil
}

func (c *HTTPClient) ReviewSubmission(ctx context.Context, submissionID string, action models.ReviewAction, reason string) error {
	return c.doJSON(ctx, call{
		method:     http.MethodPut,
		path:       "/api/submissions/" + url.PathEscape(submissionID) + "/review",
		authed:     true,
		success:    []int{http.StatusOK},
		defaultMsg: "could not review submission",
	}, models.ReviewRequest{Action: action, RejectionReason: reason}, nil)
}

func (c *HTTPClient) SubmitChallengePhoto(ctx context.Context, trackingID string, photo []byte, filename string) (*models.SubmissionResult, error) {
	if filename == "" {
		filename = "photo.jpg"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var resp models.SubmissionResult
	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/api/gifts/" + url.PathEscape(trackingID) + "/submit-challenge",
		body:        &buf,
		contentType: w.FormDataContentType(),
		authed:      true,
		success:     []int{http.StatusOK, http.StatusCreated},
		defaultMsg:  "could not submit challenge photo",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
