package api

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/tokenstore"
)

// UnauthorizedHook se ejecuta cada vez que el backend responde 401, despues de borrar el token.
type UnauthorizedHook func(ctx context.Context)

// Client envuelve http.Client: agrega el bearer token a cada request y borra la sesion ante un 401.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokenstore.TokenStore
	logger  *zap.Logger

	mu    sync.RWMutex
	hooks []UnauthorizedHook
}

// NewClient construye un cliente apuntando a la API de la tienda.
func NewClient(baseURL string, httpClient *http.Client, tokens tokenstore.TokenStore, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if tokens == nil {
		tokens = tokenstore.NewMemoryStore(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// WithTokenStore devuelve una copia que usa otro store y no hereda hooks.
// Comparte el http.Client (y su pool de conexiones).
func (c *Client) WithTokenStore(tokens tokenstore.TokenStore) *Client {
	return NewClient(c.baseURL, c.http, tokens, c.logger)
}

// Tokens expone el store al que esta ligado el cliente.
func (c *Client) Tokens() tokenstore.TokenStore {
	return c.tokens
}

// OnUnauthorized registra un hook para respuestas 401.
func (c *Client) OnUnauthorized(hook UnauthorizedHook) {
	if hook == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook)
}

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out)
}

// Post envia un POST sin cuerpo.
func (c *Client) Post(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPost, path, "", nil, out)
}

// PostForm envia application/x-www-form-urlencoded.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(bodyBytes), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.currentToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode >= 400 {
		return newError(resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) currentToken(ctx context.Context) string {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("read auth token", zap.Error(err))
		return ""
	}
	return token
}

func (c *Client) handleUnauthorized(ctx context.Context) {
	if err := c.tokens.ClearToken(ctx); err != nil {
		c.logger.Warn("clear auth token", zap.Error(err))
	}
	c.mu.RLock()
	hooks := append([]UnauthorizedHook(nil), c.hooks...)
	c.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx)
	}
}
