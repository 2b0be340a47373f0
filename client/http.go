package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/kouper/carechat/logger"
)

// DefaultBaseURL is the backend origin baked in at build time:
//
//	go build -ldflags "-X github.com/kouper/carechat/client.DefaultBaseURL=https://care.example.com"
var DefaultBaseURL = "http://localhost:8000"

// maxErrorBody caps how much of a failed response body is kept for diagnostics.
const maxErrorBody = 512

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for baseURL. An empty baseURL falls back to DefaultBaseURL.
// A zero timeout waits indefinitely for the backend.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Chat sends prompt as the form field "prompt" to POST /chat and decodes the
// assistant message from the response.
func (c *Client) Chat(ctx context.Context, prompt string) (*Message, error) {
	resp, err := c.postForm(ctx, "/chat", map[string]string{"prompt": prompt})
	if err != nil {
		return nil, errors.Wrap(err, "chat")
	}
	defer resp.Body.Close()
	if !isSuccess(resp.StatusCode) {
		return nil, c.statusError("/chat", resp)
	}
	var m Message
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decode chat")
	}
	if m.Role == "" {
		m.Role = RoleAssistant
	}
	return &m, nil
}

// Reset asks the backend to drop its server-side conversation state. Any
// HTTP response counts as done, whatever its status; only a transport failure
// is returned as an error.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.post(ctx, "/reset", nil, "")
	if err != nil {
		return errors.Wrap(err, "reset")
	}
	defer resp.Body.Close()

	var r ResetResponse
	if isSuccess(resp.StatusCode) {
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&r)
	}
	logger.Debug("reset answered", "status", resp.StatusCode, "message", r.Message)
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, fields map[string]string) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, errors.Wrapf(err, "write field %s", k)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close form")
	}
	return c.post(ctx, path, &buf, w.FormDataContentType())
}

func (c *Client) post(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.HTTPClient.Do(req)
}

func (c *Client) statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
