package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// APIResponse is the upstream envelope every endpoint returns.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UpstreamError is a backend-reported business failure (success:false).
// The UI treats it like a transport failure: one notification, draft kept.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.Status)
}

// Client is the narrow interface to the LuxuryEscape REST API. It never
// mutates drafts; failures surface as a single error for the caller's
// notification channel.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New() *Client {
	base := os.Getenv("UPSTREAM_API_URL")
	if base == "" {
		base = "http://localhost:5000/api/v1"
	}
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	var envelope APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if !envelope.Success || resp.StatusCode >= 400 {
		return &envelope, &UpstreamError{Status: resp.StatusCode, Message: envelope.Message}
	}
	return &envelope, nil
}

// GetJSON fetches path and decodes the envelope's data into out.
func (c *Client) GetJSON(ctx context.Context, path, token string, out any) error {
	envelope, err := c.do(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return err
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// PostJSON sends a JSON body and decodes the envelope's data into out.
func (c *Client) PostJSON(ctx context.Context, path, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	envelope, err := c.do(ctx, http.MethodPost, path, token, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// SubmitMultipart sends a serialized draft payload. Invoked exactly once
// per submit action; callers hold the session's in-flight flag.
func (c *Client) SubmitMultipart(ctx context.Context, method, path, token string, body *bytes.Buffer, contentType string) (*APIResponse, error) {
	return c.do(ctx, method, path, token, body, contentType)
}

// Delete issues a DELETE against path.
func (c *Client) Delete(ctx context.Context, path, token string) error {
	_, err := c.do(ctx, http.MethodDelete, path, token, nil, "")
	return err
}
