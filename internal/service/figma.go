package service

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/figma"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
)

type figmaAPI interface {
	Configured() bool
	File(ctx context.Context, fileKey, nodeIDs string) ([]byte, error)
}

type FigmaService struct {
	client figmaAPI
}

func NewFigmaService(s *server.Server) *FigmaService {
	return &FigmaService{
		client: figma.NewClient(s.Config.Integration.FigmaAccessToken, s.Config.App.UpstreamTimeout),
	}
}

// File returns the Figma document JSON for req.
func (s *FigmaService) File(ctx context.Context, req *model.FigmaFileRequest) ([]byte, error) {
	if !s.client.Configured() {
		return nil, errs.NewConfigurationError("Figma access token is not configured")
	}

	body, err := s.client.File(ctx, req.FileKey, req.NodeIDs)
	if err != nil {
		return nil, errs.NewUpstreamError("Figma", err)
	}

	return body, nil
}
