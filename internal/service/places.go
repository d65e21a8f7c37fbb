package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/cache"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/alpereneser/connectlist-sub003/internal/lib/places"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/rs/zerolog"
)

const placesProvider = "Google Places"

type placesAPI interface {
	Configured() bool
	Photo(ctx context.Context, req *model.PlacePhotoRequest) (*model.PlacePhoto, error)
	Query(ctx context.Context, endpoint model.PlacesEndpoint, params url.Values) ([]byte, error)
}

type PlacesService struct {
	client placesAPI
	cache  *cache.Cache
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewPlacesService(s *server.Server) *PlacesService {
	return &PlacesService{
		client: places.NewClient(s.Config.Integration.GooglePlacesAPIKey, s.Config.App.UpstreamTimeout),
		cache:  cache.New(s.Redis, "places"),
		ttl:    s.Config.App.PlacesCacheTTL,
		logger: s.Logger,
	}
}

func (s *PlacesService) configured() error {
	if !s.client.Configured() {
		return errs.NewConfigurationError("Google Places API key is not configured")
	}
	return nil
}

// Photo downloads a place photo and returns it base64 encoded.
func (s *PlacesService) Photo(ctx context.Context, req *model.PlacePhotoRequest) (*model.PlacePhotoResponse, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	req.ApplyDefaults()

	photo, err := s.client.Photo(ctx, req)
	if err != nil {
		return nil, errs.NewUpstreamError(placesProvider, err)
	}

	return &model.PlacePhotoResponse{
		Success:     true,
		ContentType: photo.ContentType,
		Data:        base64.StdEncoding.EncodeToString(photo.Data),
	}, nil
}

// Proxy forwards params to endpoint and returns Google's JSON unchanged.
// OK and ZERO_RESULTS answers are cached; a cache failure falls through
// to Google.
func (s *PlacesService) Proxy(ctx context.Context, endpoint model.PlacesEndpoint, params url.Values) ([]byte, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	key := cache.Key(string(endpoint), places.ForwardParams(params).Encode())

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, cache.ErrMiss):
		logger.FromContext(ctx, s.logger).Warn().Err(err).Str("endpoint", string(endpoint)).Msg("places cache unavailable")
	}

	body, err := s.client.Query(ctx, endpoint, params)
	if err != nil {
		return nil, errs.NewUpstreamError(placesProvider, err)
	}

	if cacheable(body) {
		if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
			logger.FromContext(ctx, s.logger).Warn().Err(err).Str("endpoint", string(endpoint)).Msg("failed to cache places response")
		}
	}

	return body, nil
}

func cacheable(body []byte) bool {
	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	return envelope.Status == "OK" || envelope.Status == "ZERO_RESULTS"
}
