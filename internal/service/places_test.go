package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaces struct {
	configured bool
	photo      *model.PlacePhoto
	body       []byte
	err        error
	photoReqs  []*model.PlacePhotoRequest
	queries    int
}

func (f *fakePlaces) Configured() bool { return f.configured }

func (f *fakePlaces) Photo(_ context.Context, req *model.PlacePhotoRequest) (*model.PlacePhoto, error) {
	f.photoReqs = append(f.photoReqs, req)
	return f.photo, f.err
}

func (f *fakePlaces) Query(_ context.Context, _ model.PlacesEndpoint, _ url.Values) ([]byte, error) {
	f.queries++
	return f.body, f.err
}

func TestPlacesService_Photo(t *testing.T) {
	client := &fakePlaces{configured: true, photo: &model.PlacePhoto{ContentType: "image/jpeg", Data: []byte("img")}}
	svc := &PlacesService{client: client, logger: nopLogger()}

	resp, err := svc.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref"})

	require.NoError(t, err)
	assert.Equal(t, &model.PlacePhotoResponse{Success: true, ContentType: "image/jpeg", Data: "aW1n"}, resp)
	require.Len(t, client.photoReqs, 1)
	assert.Equal(t, model.DefaultPhotoMaxWidth, client.photoReqs[0].MaxWidth)
}

func TestPlacesService_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		svc := &PlacesService{client: &fakePlaces{}, logger: nopLogger()}

		_, err := svc.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref"})
		httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeConfiguration)
		assert.Equal(t, "Google Places API key is not configured", httpErr.Message)

		_, err = svc.Proxy(context.Background(), model.PlacesEndpointDetails, url.Values{})
		requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeConfiguration)
	})

	t.Run("upstream failure", func(t *testing.T) {
		svc := &PlacesService{client: &fakePlaces{configured: true, err: errors.New("google places returned 403")}, logger: nopLogger()}

		_, err := svc.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref"})
		httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeUpstream)
		assert.Contains(t, httpErr.Message, "403")
	})
}

func TestPlacesService_ProxyCaches(t *testing.T) {
	c, mr := newTestCache(t, "places")
	client := &fakePlaces{configured: true, body: []byte(`{"status":"OK","results":[]}`)}
	svc := &PlacesService{client: client, cache: c, ttl: time.Minute, logger: nopLogger()}
	params := url.Values{"query": {"coffee"}, "endpoint": {"textsearch"}}

	for range 2 {
		body, err := svc.Proxy(context.Background(), model.PlacesEndpointTextSearch, params)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"OK","results":[]}`, string(body))
	}
	assert.Equal(t, 1, client.queries)

	t.Run("key ignores caller key param", func(t *testing.T) {
		params := url.Values{"query": {"coffee"}, "key": {"other"}}
		_, err := svc.Proxy(context.Background(), model.PlacesEndpointTextSearch, params)
		require.NoError(t, err)
		assert.Equal(t, 1, client.queries)
	})

	t.Run("error statuses are not cached", func(t *testing.T) {
		client.body = []byte(`{"status":"REQUEST_DENIED"}`)
		params := url.Values{"place_id": {"abc"}}
		for range 2 {
			_, err := svc.Proxy(context.Background(), model.PlacesEndpointDetails, params)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, client.queries)
	})

	t.Run("redis down falls through", func(t *testing.T) {
		mr.Close()
		client.body = []byte(`{"status":"OK"}`)
		body, err := svc.Proxy(context.Background(), model.PlacesEndpointAutocomplete, url.Values{"input": {"ist"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"OK"}`, string(body))
	})
}

func TestCacheable(t *testing.T) {
	assert.True(t, cacheable([]byte(`{"status":"ZERO_RESULTS"}`)))
	assert.False(t, cacheable([]byte(`{"status":"OVER_QUERY_LIMIT"}`)))
	assert.False(t, cacheable([]byte(`not json`)))
}

