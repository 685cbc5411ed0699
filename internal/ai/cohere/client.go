package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a single rerank or classify call.
	DefaultTimeout = 30 * time.Second
	// ChatTimeout is longer since chat generations can take a while.
	ChatTimeout = 60 * time.Second

	DefaultBaseURL = "https://api.cohere.com"
)

// Client calls the hosted AI service. Every method makes a single attempt;
// callers decide what a failure means.
type Client struct {
	baseURL       string
	apiKey        string
	defaultClient *http.Client
	chatClient    *http.Client
}

// NewClient creates a client for the given base URL and API key. An empty
// baseURL falls back to the public endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		defaultClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		chatClient: &http.Client{
			Timeout: ChatTimeout,
		},
	}
}

// Chat sends a single conversational turn.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.post(ctx, c.chatClient, "/v1/chat", req, &out); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &out, nil
}

// Rerank scores the candidate documents against the query.
func (c *Client) Rerank(ctx context.Context, req RerankRequest) (*RerankResponse, error) {
	var out RerankResponse
	if err := c.post(ctx, c.defaultClient, "/v1/rerank", req, &out); err != nil {
		return nil, fmt.Errorf("rerank: %w", err)
	}
	return &out, nil
}

// Classify predicts a label for each input from the labeled examples.
func (c *Client) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	var out ClassifyResponse
	if err := c.post(ctx, c.defaultClient, "/v1/classify", req, &out); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, hc *http.Client, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
