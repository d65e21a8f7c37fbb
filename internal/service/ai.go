package service

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/ai"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
)

type generator interface {
	Configured() bool
	Generate(ctx context.Context, prompt, model, systemInstruction string) (*ai.Result, error)
}

type AIService struct {
	client generator
}

func NewAIService(ctx context.Context, s *server.Server) (*AIService, error) {
	client, err := ai.NewClient(ctx, ai.Options{
		APIKey:       s.Config.Integration.GeminiAPIKey,
		DefaultModel: s.Config.Integration.GeminiModel,
	})
	if err != nil {
		return nil, err
	}

	return &AIService{client: client}, nil
}

// Generate runs a Gemini text generation.
func (s *AIService) Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	if !s.client.Configured() {
		return nil, errs.NewConfigurationError("Gemini API key is not configured")
	}

	res, err := s.client.Generate(ctx, req.Prompt, req.Model, req.SystemInstruction)
	if err != nil {
		return nil, errs.NewUpstreamError("Gemini", err)
	}

	return &model.GenerateResponse{
		Success: true,
		Text:    res.Text,
		Model:   res.Model,
	}, nil
}
