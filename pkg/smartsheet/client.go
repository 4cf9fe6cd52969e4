// Package smartsheet is a client for the Smartsheet API v2.
//
// Responses decode into the types of the models package; the grid
// package navigates them by column title.
package smartsheet

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
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxErrorBody caps how much of a failed response is kept for errors.
const maxErrorBody = 1 << 20

// Client issues authenticated requests against the API. It is safe for
// concurrent use.
type Client struct {
	endpoint  string
	bearer    string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// NewClient returns a Client using token as the bearer token.
func NewClient(token string, opts Options) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	return &Client{
		endpoint:  strings.TrimRight(opts.endpoint(), "/"),
		bearer:    "Bearer " + token,
		userAgent: opts.UserAgent,
		http:      opts.httpClient(),
		logger:    opts.logger(),
	}, nil
}

// NewClientFromEnv returns a Client using the token in the
// SMARTSHEET_ACCESS_TOKEN environment variable.
func NewClientFromEnv(opts Options) (*Client, error) {
	token, ok := os.LookupEnv(EnvAccessToken)
	if !ok || token == "" {
		return nil, fmt.Errorf("environment variable %s must be set: %w", EnvAccessToken, ErrMissingToken)
	}
	return NewClient(token, opts)
}

// Endpoint returns the base URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) url(path string, q url.Values) string {
	u := c.endpoint + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// do sends a request and decodes a successful JSON response into out.
// out may be nil to discard the body.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	target := c.url(path, q)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", c.bearer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			"method", method, "url", target, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request",
		"method", method,
		"url", target,
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if err := checkStatus(method, target, resp); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	start = time.Now()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	c.logger.DebugContext(ctx, "decoded response", "request_id", requestID, "elapsed", time.Since(start))
	return nil
}

// checkStatus returns a RequestError for 4xx and 5xx responses. Other
// statuses, including redirects, are not errors.
func checkStatus(method, target string, resp *http.Response) error {
	if resp.StatusCode < 400 || resp.StatusCode >= 600 {
		return nil
	}
	e := NewRequestError(method, target, resp.StatusCode, http.StatusText(resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil && !errors.Is(err, io.EOF) {
		return e
	}
	var apiErr APIError
	if json.Unmarshal(data, &apiErr) == nil && (apiErr.Message != "" || apiErr.ErrorCode != 0) {
		e.API = &apiErr
	} else {
		e.Body = strings.TrimSpace(string(data))
	}
	return e
}
