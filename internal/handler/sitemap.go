package handler

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

// SitemapCacheControl lets crawlers and CDNs reuse the document for an hour.
const SitemapCacheControl = "public, max-age=3600"

type sitemapService interface {
	Generate(ctx context.Context) ([]byte, error)
}

type SitemapHandler struct {
	Handler
	sitemap sitemapService
}

func NewSitemapHandler(s *server.Server, sitemap sitemapService) *SitemapHandler {
	return &SitemapHandler{
		Handler: NewHandler(s),
		sitemap: sitemap,
	}
}

func (h *SitemapHandler) Sitemap(c echo.Context, _ *model.SitemapRequest) ([]byte, error) {
	return h.sitemap.Generate(c.Request().Context())
}
