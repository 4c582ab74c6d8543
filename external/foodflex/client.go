// Package foodflex is the typed client for the FoodFlex backend REST API.
// Every operation in this module goes through it; the backend stays the
// single source of truth for stock, credit and order state.
package foodflex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const refreshPath = "/accounts/token/refresh/"

// DefaultBaseURL matches the local backend dev server.
const DefaultBaseURL = "http://127.0.0.1:8000/api"

// TokenSource supplies the persisted tokens and absorbs updates from the
// transparent refresh flow. Clear tears the whole session down.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	SetAccessToken(token string)
	Clear()
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	sfg     singleflight.Group // collapses concurrent refresh attempts
}

// NewClient builds a client for the given base URL. An empty baseURL falls
// back to FOODFLEX_API_URL, then to the local default.
func NewClient(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("FOODFLEX_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// SetHTTPClient swaps the underlying transport (tests, instrumentation).
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// do issues one API request. Bodies are marshaled once so a request can be
// replayed after a token refresh. A 401 triggers at most one refresh attempt
// before the call either retries once or fails with ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	token := ""
	if c.tokens != nil {
		token = c.tokens.AccessToken()
	}

	resp, err := c.attempt(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil && path != refreshPath {
		drain(resp)
		fresh, err := c.refreshAccess(ctx)
		if err != nil {
			return err
		}
		resp, err = c.attempt(ctx, method, path, query, payload, fresh)
		if err != nil {
			return err
		}
	}

	defer drain(resp)

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// refreshAccess trades the stored refresh token for a new access token.
// Concurrent callers share one attempt; a rejected refresh clears the token
// source so the caller is forced back to login.
func (c *Client) refreshAccess(ctx context.Context) (string, error) {
	v, err, _ := c.sfg.Do("refresh", func() (any, error) {
		rt := c.tokens.RefreshToken()
		if rt == "" {
			c.tokens.Clear()
			return "", ErrSessionExpired
		}

		payload, _ := json.Marshal(map[string]string{"refresh": rt})
		resp, err := c.attempt(ctx, http.MethodPost, refreshPath, nil, payload, "")
		if err != nil {
			return "", err
		}
		defer drain(resp)

		if resp.StatusCode >= 300 {
			c.tokens.Clear()
			return "", fmt.Errorf("%w: refresh rejected with status %d", ErrSessionExpired, resp.StatusCode)
		}

		var body struct {
			Access string `json:"access"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Access == "" {
			c.tokens.Clear()
			return "", fmt.Errorf("%w: unusable refresh response", ErrSessionExpired)
		}
		c.tokens.SetAccessToken(body.Access)
		return body.Access, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
}
