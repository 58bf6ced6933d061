// Package api talks to the recipe-generation service over HTTP/JSON.
// It implements the domain.RecipeGenerator and domain.Assistant ports.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.RecipeGenerator = (*Client)(nil)
	_ domain.Assistant       = (*Client)(nil)
)

// Service endpoints, relative to the base URL.
const (
	pathGenerate = "/api/recipes/generate"
	pathChat     = "/api/chat"
	pathRoot     = "/api/"
)

// ── Wire types ───────────────────────────────────────────────────

// generateEnvelope is the response of the generation endpoint:
// {success: true, recipe: {...}} or {success: false, error: "..."}.
type generateEnvelope struct {
	Success bool           `json:"success"`
	Recipe  *domain.Recipe `json:"recipe"`
	Error   string         `json:"error"`
}

// chatPayload is the request body of the chat endpoint.
type chatPayload struct {
	Message   string `json:"message"`
	AgentType string `json:"agent_type"`
}

// chatEnvelope is the chat endpoint's response. Capabilities and
// metadata also come back but the client has no use for them.
type chatEnvelope struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// Client is an HTTP client for the recipe-generation service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a client for the service at baseURL
// (e.g. "http://localhost:8000", no trailing slash).
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate asks the service for a recipe built from the request
// snapshot. A service-level refusal comes back as *domain.ServiceError;
// every other error is a transport fault.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Recipe, error) {
	var env generateEnvelope
	if err := c.post(ctx, pathGenerate, req, &env); err != nil {
		return nil, err
	}

	if !env.Success {
		c.log.Debug("api: generation refused: %q", env.Error)
		return nil, &domain.ServiceError{Message: env.Error}
	}
	if env.Recipe == nil {
		return nil, fmt.Errorf("api: success response without a recipe")
	}

	c.log.Debug("api: got recipe %q (%d ingredients, %d steps)",
		env.Recipe.Name, len(env.Recipe.Ingredients), len(env.Recipe.Instructions))
	return env.Recipe, nil
}

// Ask sends a free-form cooking question to the service's chat agent
// and returns the assistant's reply.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	var env chatEnvelope
	if err := c.post(ctx, pathChat, chatPayload{Message: question, AgentType: "chat"}, &env); err != nil {
		return "", err
	}

	if !env.Success {
		return "", &domain.ServiceError{Message: env.Error}
	}
	return env.Response, nil
}

// Ping probes the service root. Used at startup to report whether the
// service is reachable before the user types anything.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathRoot, nil)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: ping failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api: ping returned %s", resp.Status)
	}
	return nil
}

// post sends a JSON body and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("api: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("api: POST %s (%d bytes)", c.baseURL+path, len(jsonData))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api: service returned %s", resp.Status)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api: unmarshal response: %w", err)
	}
	return nil
}
