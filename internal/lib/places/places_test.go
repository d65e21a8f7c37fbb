package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("server-key", 5*time.Second).WithBaseURL(srv.URL)
}

func TestClient_Photo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photo", r.URL.Path)
		assert.Equal(t, "ref-1", r.URL.Query().Get("photo_reference"))
		assert.Equal(t, "400", r.URL.Query().Get("maxwidth"))
		assert.Equal(t, "server-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	})

	req := &model.PlacePhotoRequest{PhotoReference: "ref-1"}
	req.ApplyDefaults()

	photo, err := c.Photo(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.ContentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, photo.Data)
}

func TestClient_PhotoUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	_, err := c.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref-1", MaxWidth: 100})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_ResponseLimits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	})
	c.photoLimit = 10
	c.responseLimit = 9

	photo, err := c.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref-1", MaxWidth: 100})
	require.NoError(t, err)
	assert.Len(t, photo.Data, 10)

	c.photoLimit = 9
	_, err = c.Photo(context.Background(), &model.PlacePhotoRequest{PhotoReference: "ref-1", MaxWidth: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response exceeds 9 bytes")

	_, err = c.Query(context.Background(), model.PlacesEndpointDetails, url.Values{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response exceeds 9 bytes")
}

func TestClient_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "coffee", q.Get("query"))
		assert.Equal(t, "tr", q.Get("language"))
		assert.Equal(t, "server-key", q.Get("key"))
		assert.Empty(t, q.Get("endpoint"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[]}`))
	})

	params := url.Values{
		"endpoint": {"textsearch"},
		"query":    {"coffee"},
		"language": {"tr"},
		"key":      {"client-key"},
	}

	body, err := c.Query(context.Background(), model.PlacesEndpointTextSearch, params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","results":[]}`, string(body))
	assert.Equal(t, "client-key", params.Get("key"), "caller params are not mutated")
}

func TestForwardParams(t *testing.T) {
	got := ForwardParams(url.Values{"endpoint": {"details"}, "key": {"k"}, "place_id": {"abc"}})
	assert.Equal(t, url.Values{"place_id": {"abc"}}, got)
}

func TestClient_Configured(t *testing.T) {
	assert.False(t, NewClient("  ", time.Second).Configured())
	assert.True(t, NewClient("k", time.Second).Configured())
}
