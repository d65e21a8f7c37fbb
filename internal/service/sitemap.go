package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/lib/cache"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/alpereneser/connectlist-sub003/internal/lib/sitemap"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/sqlerr"
	"github.com/rs/zerolog"
)

const sitemapCacheKey = "urlset"

type staticPage struct {
	path     string
	freq     sitemap.ChangeFreq
	priority float64
}

var staticPages = []staticPage{
	{path: "/", freq: sitemap.Daily, priority: 1.0},
	{path: "/search", freq: sitemap.Daily, priority: 0.7},
	{path: "/login", freq: sitemap.Monthly, priority: 0.3},
}

type publicListSource interface {
	GetPublicLists(ctx context.Context, limit int) ([]model.List, error)
}

type publicProfileSource interface {
	GetPublicProfiles(ctx context.Context, limit int) ([]model.Profile, error)
}

type SitemapService struct {
	lists    publicListSource
	profiles publicProfileSource
	cache    *cache.Cache
	baseURL  string
	maxItems int
	ttl      time.Duration
	logger   *zerolog.Logger
}

func NewSitemapService(s *server.Server, lists publicListSource, profiles publicProfileSource) *SitemapService {
	return &SitemapService{
		lists:    lists,
		profiles: profiles,
		cache:    cache.New(s.Redis, "sitemap"),
		baseURL:  s.Config.App.BaseURL,
		maxItems: s.Config.App.SitemapMaxLists,
		ttl:      s.Config.App.SitemapCacheTTL,
		logger:   s.Logger,
	}
}

// Generate returns the sitemap XML, from cache when possible.
func (s *SitemapService) Generate(ctx context.Context) ([]byte, error) {
	cached, err := s.cache.Get(ctx, sitemapCacheKey)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, cache.ErrMiss):
		logger.FromContext(ctx, s.logger).Warn().Err(err).Msg("sitemap cache unavailable")
	}

	doc, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sitemapCacheKey, doc, s.ttl); err != nil {
		logger.FromContext(ctx, s.logger).Warn().Err(err).Msg("failed to cache sitemap")
	}

	return doc, nil
}

func (s *SitemapService) build(ctx context.Context) ([]byte, error) {
	lists, err := s.lists.GetPublicLists(ctx, s.maxItems)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	profiles, err := s.profiles.GetPublicProfiles(ctx, s.maxItems)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	b := sitemap.NewBuilder(s.baseURL)
	for _, page := range staticPages {
		b.Add(page.path, time.Time{}, page.freq, page.priority)
	}
	for _, l := range lists {
		b.Add("/list/"+l.ID.String(), l.UpdatedAt, sitemap.Weekly, 0.8)
	}
	for _, p := range profiles {
		b.Add("/profile/"+url.PathEscape(p.Username), time.Time{}, sitemap.Weekly, 0.6)
	}

	logger.FromContext(ctx, s.logger).Info().
		Int("lists", len(lists)).
		Int("profiles", len(profiles)).
		Msg("built sitemap")

	return b.Bytes()
}
