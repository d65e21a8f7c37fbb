// Package ai wraps the Gemini API (google.golang.org/genai) for short
// text generations.
package ai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// Options configures the Gemini client.
type Options struct {
	APIKey       string
	DefaultModel string
	// BaseURL overrides the API host.
	BaseURL string
}

// Result is a finished generation.
type Result struct {
	Text  string
	Model string
}

type Client struct {
	genai        *genai.Client
	defaultModel string
}

// NewClient builds a client. Without an API key the client is created
// unconfigured and Generate must not be called.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	c := &Client{defaultModel: opts.DefaultModel}

	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}
	c.genai = gc

	return c, nil
}

func (c *Client) Configured() bool {
	return c.genai != nil
}

// Generate sends prompt to model, or to the default model when model is empty.
func (c *Client) Generate(ctx context.Context, prompt, model, systemInstruction string) (*Result, error) {
	if c.genai == nil {
		return nil, errors.New("gemini client is not configured")
	}

	if model == "" {
		model = c.defaultModel
	}

	var cfg *genai.GenerateContentConfig
	if systemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, errors.New("gemini: " + apiErr.Message)
		}
		return nil, errors.Wrap(err, "gemini")
	}

	return &Result{Text: resp.Text(), Model: model}, nil
}
