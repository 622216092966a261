// Package api is the REST client for the climbing service backend. It has
// two layers: a configured HTTP wrapper (base URL, bearer-token injection,
// envelope decoding, 401 handling, error normalization) and one typed
// module per resource family, each function mapping one-to-one to an
// endpoint with no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second
)

// SessionStore is the slice of the session layer the wrapper needs: read
// the token for outgoing requests, wipe everything on a 401.
type SessionStore interface {
	TokenSource
	Clear(ctx context.Context) error
}

// Options configures a Client. The zero value of every field has a
// usable default except Session, which may be left nil for anonymous use.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// Session provides the persisted token and is cleared on 401.
	Session SessionStore

	// OnUnauthorized runs after a 401 has cleared the session. The web
	// client redirects to /login here; the CLI drops to the logged-out
	// prompt.
	OnUnauthorized func()

	Logger  logging.Logger
	Metrics *Metrics
}

// Client is the single configured request client. All resource modules
// share its transport, timeout, and failure semantics. Errors are never
// retried; every call-site receives the normalized error and handles it
// locally.
type Client struct {
	httpc          *http.Client
	baseURL        string
	session        SessionStore
	onUnauthorized func()
	log            logging.Logger
	metrics        *Metrics

	Auth       *AuthAPI
	Locations  *LocationsAPI
	Routes     *RoutesAPI
	Activities *ActivitiesAPI
	Posts      *PostsAPI
	Uploads    *UploadAPI
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	c := &Client{
		baseURL:        baseURL,
		session:        opts.Session,
		onUnauthorized: opts.OnUnauthorized,
		log:            log,
		metrics:        opts.Metrics,
	}

	var tokens TokenSource
	if opts.Session != nil {
		tokens = opts.Session
	}
	c.httpc = &http.Client{
		Timeout:   timeout,
		Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
	}

	c.Auth = &AuthAPI{c: c}
	c.Locations = &LocationsAPI{c: c}
	c.Routes = &RoutesAPI{c: c}
	c.Activities = &ActivitiesAPI{c: c}
	c.Posts = &PostsAPI{c: c}
	c.Uploads = &UploadAPI{c: c}

	return c
}

// envelope is the uniform response wrapper every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

// Generic verbs. Resource modules build on these; out may be nil for
// calls whose payload is irrelevant.

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, payload)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// send executes req and decodes the envelope into out. All cross-cutting
// failure handling lives here: connectivity normalization, the 401 forced
// logout, and backend message pass-through.
func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.httpc.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.observe(req.Method, "error", elapsed)
		c.log.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "err", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, common.ErrConnection)
	}
	defer resp.Body.Close()

	c.observe(req.Method, strconv.Itoa(resp.StatusCode), elapsed)
	c.log.Debug(ctx, "request done",
		"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "elapsed", elapsed)

	if resp.StatusCode == http.StatusUnauthorized {
		c.forceLogout(ctx)
		return common.ErrUnauthorized
	}

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 || (decodeErr == nil && !env.Success) {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Code: env.Code, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// forceLogout clears the persisted session and fires the OnUnauthorized
// hook. This is the wrapper's only cross-cutting side effect.
func (c *Client) forceLogout(ctx context.Context) {
	if c.session != nil {
		if err := c.session.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear session after 401", "err", err)
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func (c *Client) observe(method, status string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.observe(method, status, d)
	}
}

// Typed helpers shared by the resource modules.

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	var v T
	if err := c.Get(ctx, path, query, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (*models.Page[T], error) {
	var page models.Page[T]
	if err := c.Get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func postJSON[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var v T
	if err := c.Post(ctx, path, body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func putJSON[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var v T
	if err := c.Put(ctx, path, body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
