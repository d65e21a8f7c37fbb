package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Unconfigured(t *testing.T) {
	c, err := NewClient(context.Background(), Options{DefaultModel: "gemini-2.0-flash"})
	require.NoError(t, err)
	assert.False(t, c.Configured())

	_, err = c.Generate(context.Background(), "hi", "", "")
	assert.Error(t, err)
}

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "systemInstruction")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Top 5 films"}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Options{
		APIKey:       "gm-key",
		DefaultModel: "gemini-2.0-flash",
		BaseURL:      srv.URL + "/",
	})
	require.NoError(t, err)
	require.True(t, c.Configured())

	res, err := c.Generate(context.Background(), "Suggest a list title", "", "Be brief")
	require.NoError(t, err)
	assert.Equal(t, "Top 5 films", res.Text)
	assert.Equal(t, "gemini-2.0-flash", res.Model)
}

func TestClient_GenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Options{APIKey: "bad", DefaultModel: "gemini-2.0-flash", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hi", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}
