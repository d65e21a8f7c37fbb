package handler

import (
	"context"
	"net/url"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

type placesService interface {
	Photo(ctx context.Context, req *model.PlacePhotoRequest) (*model.PlacePhotoResponse, error)
	Proxy(ctx context.Context, endpoint model.PlacesEndpoint, params url.Values) ([]byte, error)
}

// PlacesHandler serves the Google Places photo and proxy functions.
type PlacesHandler struct {
	Handler
	places placesService
}

func NewPlacesHandler(s *server.Server, places placesService) *PlacesHandler {
	return &PlacesHandler{
		Handler: NewHandler(s),
		places:  places,
	}
}

func (h *PlacesHandler) Photo(c echo.Context, req *model.PlacePhotoRequest) (*model.PlacePhotoResponse, error) {
	return h.places.Photo(c.Request().Context(), req)
}

// Proxy forwards the raw query string; the service strips endpoint and key.
func (h *PlacesHandler) Proxy(c echo.Context, req *model.PlacesProxyRequest) ([]byte, error) {
	return h.places.Proxy(c.Request().Context(), req.Endpoint, c.QueryParams())
}
