package handler

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

type figmaService interface {
	File(ctx context.Context, req *model.FigmaFileRequest) ([]byte, error)
}

type aiService interface {
	Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error)
}

type FigmaHandler struct {
	Handler
	figma figmaService
}

func NewFigmaHandler(s *server.Server, figma figmaService) *FigmaHandler {
	return &FigmaHandler{
		Handler: NewHandler(s),
		figma:   figma,
	}
}

func (h *FigmaHandler) File(c echo.Context, req *model.FigmaFileRequest) ([]byte, error) {
	return h.figma.File(c.Request().Context(), req)
}

type AIHandler struct {
	Handler
	ai aiService
}

func NewAIHandler(s *server.Server, ai aiService) *AIHandler {
	return &AIHandler{
		Handler: NewHandler(s),
		ai:      ai,
	}
}

func (h *AIHandler) Generate(c echo.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	return h.ai.Generate(c.Request().Context(), req)
}
