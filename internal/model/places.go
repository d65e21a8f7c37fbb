package model

import (
	"github.com/alpereneser/connectlist-sub003/internal/validation"
)

// PlacesEndpoint is a Google Places web service the proxy forwards to.
type PlacesEndpoint string

const (
	PlacesEndpointTextSearch   PlacesEndpoint = "textsearch"
	PlacesEndpointDetails      PlacesEndpoint = "details"
	PlacesEndpointAutocomplete PlacesEndpoint = "autocomplete"
)

// DefaultPhotoMaxWidth is used when the caller gives no dimension.
const DefaultPhotoMaxWidth = 400

// PlacePhotoRequest selects a Places photo and its bounding box.
// Google accepts 1..1600 for both bounds.
type PlacePhotoRequest struct {
	PhotoReference string `query:"photo_reference" validate:"required"`
	MaxWidth       int    `query:"maxwidth" validate:"omitempty,min=1,max=1600"`
	MaxHeight      int    `query:"maxheight" validate:"omitempty,min=1,max=1600"`
}

func (r *PlacePhotoRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// ApplyDefaults sets MaxWidth when neither bound was given.
func (r *PlacePhotoRequest) ApplyDefaults() {
	if r.MaxWidth == 0 && r.MaxHeight == 0 {
		r.MaxWidth = DefaultPhotoMaxWidth
	}
}

// PlacePhoto is a downloaded Places photo.
type PlacePhoto struct {
	ContentType string
	Data        []byte
}

// PlacePhotoResponse carries the image as base64.
type PlacePhotoResponse struct {
	Success     bool   `json:"success"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// PlacesProxyRequest names the upstream endpoint. Every other query
// parameter is forwarded as is.
type PlacesProxyRequest struct {
	Endpoint PlacesEndpoint `query:"endpoint" validate:"required,oneof=textsearch details autocomplete"`
}

func (r *PlacesProxyRequest) Validate() error {
	return validation.Validator().Struct(r)
}
