// Package apiclient is the transport layer between the client and the finance backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/finboard/internal/session"
)

// Navigator is the UI router the client drives when a session expires.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

const LoginPath = "/"

// DefaultPublicPaths never receive the Authorization header and never trigger a forced logout.
var DefaultPublicPaths = []string{
	"/auth/login",
	"/auth/register",
	"/auth/forgot-password",
	"/auth/reset-password",
}

// Paths where a 401 must not bounce the user back to the login screen.
var noRedirectPrefixes = []string{"/register", "/reset-password"}

type Client struct {
	baseURL     *url.URL
	http        *http.Client
	session     session.Provider
	navigator   Navigator
	publicPaths []string
	logger      *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

func WithPublicPaths(paths ...string) Option {
	return func(c *Client) { c.publicPaths = paths }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, sess session.Provider, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:     u,
		http:        &http.Client{Timeout: 30 * time.Second},
		session:     sess,
		publicPaths: DefaultPublicPaths,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Session exposes the credential store the client reads from.
func (c *Client) Session() session.Provider {
	return c.session
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Do sends req and decodes a successful JSON response into out (which may be nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return c.transportError(ctx, req, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, req, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, body)
		if resp.StatusCode == http.StatusUnauthorized && !c.isPublic(req.Path) {
			c.expireSession()
		}

		c.logger.Debug("request failed",
			"method", req.Method, "path", req.Path, "status", resp.StatusCode, "message", apiErr.Message)

		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", req.Method, req.Path, err)
	}

	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(req.Path, "/")

	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		b, err := encodeBody(req.Body)
		if err != nil {
			return nil, err
		}

		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if key := IdempotencyKey(ctx); key != "" {
		httpReq.Header.Set("Idempotency-Key", key)
	}

	if !c.isPublic(req.Path) {
		if token := c.session.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

func (c *Client) isPublic(path string) bool {
	for _, p := range c.publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}

// expireSession drops the credential and sends the user to the login screen,
// remembering where they were so login can return them there.
func (c *Client) expireSession() {
	if err := c.session.ClearToken(); err != nil {
		c.logger.Error("failed to clear session token", "error", err)
	}

	if c.navigator == nil {
		return
	}

	current := c.navigator.CurrentPath()
	for _, prefix := range noRedirectPrefixes {
		if strings.HasPrefix(current, prefix) {
			return
		}
	}

	if err := c.session.SetRedirectPath(current); err != nil {
		c.logger.Error("failed to store redirect path", "error", err)
	}

	c.logger.Info("session expired, redirecting to login", "from", current)
	c.navigator.Redirect(LoginPath)
}

func (c *Client) transportError(ctx context.Context, req Request, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	msg := msgUnreachable

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		msg = msgTimeout
	}

	c.logger.Warn("request failed", "method", req.Method, "path", req.Path, "error", err)

	return &NetworkError{Message: msg, Err: err}
}
