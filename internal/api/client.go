// Package api implements the HTTP JSON client for the daily verse service.
// Every endpoint responds with an envelope carrying a boolean success flag;
// when success is false the server-supplied error string is surfaced to the
// caller verbatim, falling back to a generic message if absent.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// ErrOffline marks connection-level failures: the host was unreachable, the
// request timed out, or the body could not be parsed as the expected JSON.
// The UI maps this class to the offline panel; everything else is a
// server-reported failure carried by *Error.
var ErrOffline = errors.New("connection failed")

// Error is a logical failure reported by the server (success:false).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// genericFailure stands in when the server reports failure without a message.
const genericFailure = "Something went wrong. Please try again."

// Config holds client construction options.
type Config struct {
	BaseURL   string
	UserToken string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults for the given service URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}

// Client talks to the daily verse REST API. A cookie jar carries the admin
// session; the anonymous user token is attached to engagement calls.
type Client struct {
	baseURL      string
	userToken    string
	sessionToken string
	httpClient   *http.Client
}

// New creates a client with the given config.
func New(cfg Config) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userToken: cfg.UserToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
	}
}

// SetUserToken updates the anonymous token sent with engagement calls.
func (c *Client) SetUserToken(token string) {
	c.userToken = token
}

// SetSessionToken attaches the account session as a bearer token. Within one
// process the cookie jar covers it; the token restores the session across
// invocations.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

// envelope is the response convention shared by every endpoint.
type envelope struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"error,omitempty"`
}

// carrier is implemented by response structs embedding envelope.
type carrier interface {
	ok() bool
	message() string
}

func (e *envelope) ok() bool        { return e.Success }
func (e *envelope) message() string { return e.ErrorMsg }

func (c *Client) get(ctx context.Context, path string, query url.Values, out carrier) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out carrier) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body interface{}, out carrier) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string, out carrier) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// postMultipart sends form fields plus an optional file under the "image"
// field, used by the admin verse endpoints.
func (c *Client) postMultipart(ctx context.Context, method, path string, fields map[string]string, fileName string, file io.Reader, out carrier) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("image", fileName)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("failed to copy image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

// do executes the request and decodes the envelope. Connection and parse
// failures wrap ErrOffline; success:false becomes *Error. Nothing is retried
// here: retries are always user-initiated.
func (c *Client) do(req *http.Request, out carrier) error {
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: unexpected response: %v", ErrOffline, err)
	}

	if !out.ok() {
		msg := out.message()
		if msg == "" {
			msg = genericFailure
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}
	return nil
}

// getRaw fetches a non-envelope binary asset, such as the QR code image.
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Status: resp.StatusCode, Message: genericFailure}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}
	return data, nil
}
