// File: studiobook/client/client.go

// Package client is the typed REST client for the booking API. Every
// method maps to one endpoint: it attaches the bearer token when one is
// held, sends JSON, and normalizes failures into APIError values carrying
// the backend's message. It does not retry, batch, or cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"studiobook/utils"

	"go.uber.org/zap"
)

// Config carries the knobs for building a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout bounds each request; defaults to 15 seconds.
	Timeout time.Duration
	// Token seeds the bearer token. When empty and Tokens is set, the
	// stored token is loaded instead.
	Token string
	// Tokens, when set, persists the token across runs.
	Tokens TokenStore
	Logger *zap.Logger
}

// Client talks to the booking API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
	tokens  TokenStore

	mu    sync.RWMutex
	token string
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
		tokens:  cfg.Tokens,
		token:   cfg.Token,
	}

	if c.token == "" && c.tokens != nil {
		tok, err := c.tokens.Load()
		if err != nil {
			logger.Warn("Failed to load stored token", zap.Error(err))
		} else {
			c.token = tok
		}
	}

	return c
}

// Token returns the bearer token currently held, or "".
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken adopts a bearer token and persists it when a store is configured.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.tokens != nil && token != "" {
		if err := c.tokens.Save(token); err != nil {
			c.logger.Warn("Failed to persist token", zap.Error(err))
		}
	}
}

// ClearToken drops the bearer token and removes it from the store.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn("Failed to clear stored token", zap.Error(err))
		}
	}
}

// Authenticated reports whether the client holds a token.
func (c *Client) Authenticated() bool {
	return c.Token() != ""
}

// do performs one API request. body (when non-nil) is marshalled to JSON;
// out (when non-nil) receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}
