// Package dataapi is a thin client for the dashboard's REST data API
// (a PostgREST endpoint under /rest/v1).
//
// Every request carries the configured key both as the apikey header and as
// a bearer token. A non-2xx status fails the call with a *StatusError, except
// for DELETE: failed deletes are logged and reported as success.
package dataapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// RESTPrefix is the path under the base URL where resources live.
const RESTPrefix = "/rest/v1/"

// Header names and values used by the data API.
const (
	HeaderAPIKey        = "apikey"
	HeaderAuthorization = "Authorization"
	HeaderPrefer        = "Prefer"

	PreferMinimal        = "return=minimal"
	PreferRepresentation = "return=representation"
)

// Config holds the connection settings. It is built once at startup.
type Config struct {
	BaseURL string
	APIKey  string

	// HTTPClient defaults to a client without a timeout. Callers bound
	// requests through the context.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Validate checks that the endpoint and key are usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("data API url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid data API url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid data API url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid data API url %q: missing host", c.BaseURL)
	}
	if c.APIKey == "" {
		return errors.New("data API key is required")
	}
	return nil
}

// Client issues requests against one data API endpoint.
// It is safe for concurrent use.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
	logger *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		http:   httpClient,
		logger: logger,
	}, nil
}

// URL returns the full URL for a resource path such as
// "invoices?select=*&order=created_at.desc".
func (c *Client) URL(path string) string {
	return c.base + RESTPrefix + strings.TrimLeft(path, "/")
}

// Request describes one call. The zero value is a GET without a body.
type Request struct {
	Method string
	Header http.Header
	Body   []byte
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body into out. An empty body (return=minimal)
// leaves out untouched.
func (r *Response) Decode(out any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, out)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsStatus reports whether err is a *StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Fetch sends req to path. The apikey and Authorization headers are set first
// and caller headers are applied on top, so a caller header with the same
// name replaces the default. Transport errors are returned as-is.
func (c *Client) Fetch(ctx context.Context, path string, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(HeaderAPIKey, c.apiKey)
	httpReq.Header.Set(HeaderAuthorization, "Bearer "+c.apiKey)
	for name, values := range req.Header {
		httpReq.Header.Del(name)
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	c.logger.Debug("data api request", "method", method, "path", path)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}

	if !resp.OK() {
		if method == http.MethodDelete {
			// Failed deletes are logged and returned as a response, never as an error.
			c.logger.Warn("data api delete failed, ignoring", "path", path, "status", resp.StatusCode)
			return resp, nil
		}
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       data,
		}
	}

	return resp, nil
}

// GetJSON fetches path and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Fetch(ctx, path, Request{Method: http.MethodGet})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Patch applies a partial update. The server is asked not to echo the rows.
func (c *Client) Patch(ctx context.Context, path string, data any) (*Response, error) {
	return c.write(ctx, http.MethodPatch, path, data, PreferMinimal)
}

// Post creates rows. With returnData the created representation is returned
// in the response body.
func (c *Client) Post(ctx context.Context, path string, data any, returnData bool) (*Response, error) {
	prefer := PreferMinimal
	if returnData {
		prefer = PreferRepresentation
	}
	return c.write(ctx, http.MethodPost, path, data, prefer)
}

// Delete removes rows. A non-2xx status does not produce an error.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Fetch(ctx, path, Request{Method: http.MethodDelete})
}

func (c *Client) write(ctx context.Context, method, path string, data any, prefer string) (*Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", method, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set(HeaderPrefer, prefer)

	return c.Fetch(ctx, path, Request{
		Method: method,
		Header: header,
		Body:   body,
	})
}
