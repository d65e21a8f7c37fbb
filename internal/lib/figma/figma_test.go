package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_File(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "figd_token", r.Header.Get("X-Figma-Token"))
		switch r.URL.Path {
		case "/files/abc123":
			_, _ = w.Write([]byte(`{"name":"ConnectList"}`))
		case "/files/abc123/nodes":
			assert.Equal(t, "1:2,3:4", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(`{"nodes":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"err":"Not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient("figd_token", 5*time.Second).WithBaseURL(srv.URL)

	body, err := c.File(context.Background(), "abc123", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ConnectList"}`, string(body))

	body, err = c.File(context.Background(), "abc123", "1:2,3:4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":{}}`, string(body))

	_, err = c.File(context.Background(), "missing", "")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "Not found")
}

func TestClient_FileTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"ConnectList"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient("figd_token", 5*time.Second).WithBaseURL(srv.URL)
	c.maxBytes = 8

	_, err := c.File(context.Background(), "abc123", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "figma response exceeds 8 bytes")
}
