// Package api provides the authenticated JSON client for the resume REST API.
// Every call goes through one helper that attaches credentials, sets the JSON
// content type, unwraps the {success, message, data} envelope and turns
// failures into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jobproj/resume-builder/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client in request headers.
const DefaultUserAgent = "resume-builder/1.0"

// ErrUnauthorized is returned for HTTP 401/403 responses. The browser
// original redirected to the login page here; callers of this client decide
// what re-authentication looks like.
var ErrUnauthorized = errors.New("authentication required")

// Error represents a transport-level failure for a single request.
type Error struct {
	Method string
	Path   string
	Status int
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error for %s %s: %v", e.Method, e.Path, e.Cause)
	}
	return fmt.Sprintf("api error for %s %s: HTTP status %d", e.Method, e.Path, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// RemoteError is a business failure the server reported with success=false.
// Its message is what the server wants shown to the user.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "API request failed"
}

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Token     string // bearer token attached to every request
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client calls the resume API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	token      string
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8080").
func New(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		token:      opts.Token,
	}, nil
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doJSON performs one request against path (which may include a query
// string), sending body as JSON when non-nil and decoding the envelope data
// into out when non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return &Error{Method: method, Path: path, Cause: err}
	}
	target := c.baseURL.ResolveReference(rel)

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Method: method, Path: path, Cause: err}
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return &Error{Method: method, Path: path, Cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Method: method, Path: path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Cause: ErrUnauthorized}
	}

	var envelope types.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}

	if !envelope.Success {
		return &RemoteError{Code: envelope.Code, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &Error{Method: method, Path: path, Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode data: %w", err)}
		}
	}

	return nil
}

// escape query-encodes one value for path building.
func escape(v string) string {
	return url.QueryEscape(strings.TrimSpace(v))
}
