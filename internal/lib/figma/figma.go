// Package figma fetches design files from the Figma REST API with a
// server-held personal access token.
package figma

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://api.figma.com/v1"

	maxResponseBytes = 20 << 20
)

// StatusError is a non-2xx answer from Figma.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("figma returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("figma returned %d", e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	maxBytes   int64
}

func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		token:      strings.TrimSpace(token),
		baseURL:    DefaultBaseURL,
		maxBytes:   maxResponseBytes,
	}
}

// WithBaseURL points the client at another host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Configured() bool {
	return c.token != ""
}

// File returns the file document, or only nodeIDs (comma separated) when set.
func (c *Client) File(ctx context.Context, fileKey, nodeIDs string) ([]byte, error) {
	target := fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(fileKey))
	if nodeIDs != "" {
		target += "/nodes?" + url.Values{"ids": {nodeIDs}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building figma request")
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "figma")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading figma response")
	}
	if int64(len(body)) > c.maxBytes {
		return nil, errors.Errorf("figma response exceeds %d bytes", c.maxBytes)
	}
	return body, nil
}
