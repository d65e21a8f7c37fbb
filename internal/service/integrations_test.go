package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/ai"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFigma struct {
	configured bool
	body       []byte
	err        error
}

func (f *fakeFigma) Configured() bool { return f.configured }
func (f *fakeFigma) File(_ context.Context, _, _ string) ([]byte, error) {
	return f.body, f.err
}

func TestFigmaService_File(t *testing.T) {
	ctx := context.Background()
	req := &model.FigmaFileRequest{FileKey: "abc"}

	body, err := (&FigmaService{client: &fakeFigma{configured: true, body: []byte(`{"name":"x"}`)}}).File(ctx, req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(body))

	_, err = (&FigmaService{client: &fakeFigma{}}).File(ctx, req)
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeConfiguration)
	assert.Equal(t, "Figma access token is not configured", httpErr.Message)

	_, err = (&FigmaService{client: &fakeFigma{configured: true, err: errors.New("figma returned 404: Not found")}}).File(ctx, req)
	httpErr = requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeUpstream)
	assert.Equal(t, "Figma request failed: figma returned 404: Not found", httpErr.Message)
}

type fakeGenerator struct {
	configured bool
	err        error
}

func (f *fakeGenerator) Configured() bool { return f.configured }
func (f *fakeGenerator) Generate(_ context.Context, prompt, model, _ string) (*ai.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &ai.Result{Text: "echo: " + prompt, Model: model}, nil
}

func TestAIService_Generate(t *testing.T) {
	ctx := context.Background()

	resp, err := (&AIService{client: &fakeGenerator{configured: true}}).Generate(ctx, &model.GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, &model.GenerateResponse{Success: true, Text: "echo: hi", Model: "gemini-2.0-flash"}, resp)

	_, err = (&AIService{client: &fakeGenerator{}}).Generate(ctx, &model.GenerateRequest{Prompt: "hi"})
	requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeConfiguration)

	_, err = (&AIService{client: &fakeGenerator{configured: true, err: errors.New("quota")}}).Generate(ctx, &model.GenerateRequest{Prompt: "hi"})
	requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeUpstream)
}
