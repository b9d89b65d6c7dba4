package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TransportError wraps a failure to reach the reservation API at all
// (connection refused, DNS, timeout). Callers surface it as a generic
// network notification and never retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Network error or API issue."
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from the reservation API. Message carries
// the server-provided "message" field when the body is JSON, otherwise the
// raw body text.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: status %d", e.Status)
}

// messageBody is the {message} shape most mutation endpoints answer with.
type messageBody struct {
	Message string `json:"message"`
}

// Client is the JSON transport against the reservation API. Every call
// attaches Content-Type: application/json; the bearer token is supplied per
// call and never cached inside the client.
type Client struct {
	http *http.Client
}

// NewClient wraps the given *http.Client; pass nil for http.DefaultClient.
func NewClient(h *http.Client) *Client {
	if h == nil {
		h = http.DefaultClient
	}
	return &Client{http: h}
}

// DoJSON issues a request and decodes the 2xx response body into out.
// A 2xx body that fails to decode into out is an error, never a silent
// success. Pass a nil out to discard the body.
func (c *Client) DoJSON(ctx context.Context, method, url, token string, body, out any) error {
	raw, err := c.do(ctx, method, url, token, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, url, err)
	}
	return nil
}

// DoMessage issues a request whose success body is either {message} or plain
// text. Only a 2xx non-JSON body is treated as success-with-text; a non-2xx
// body is always an error regardless of how it parses.
func (c *Client) DoMessage(ctx context.Context, method, url, token string, body any) (string, error) {
	raw, err := c.do(ctx, method, url, token, body)
	if err != nil {
		return "", err
	}
	var msg messageBody
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message, nil
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) do(ctx context.Context, method, url, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s request: %w", method, url, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Message: rejectionMessage(raw)}
	}
	return raw, nil
}

// rejectionMessage extracts the human-readable message of a rejected call:
// the JSON "message" field when present, else the raw body text.
func rejectionMessage(raw []byte) string {
	var msg messageBody
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return strings.TrimSpace(string(raw))
}
