package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func newTestCache(t *testing.T, prefix string) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, prefix), mr
}

func requireHTTPError(t *testing.T, err error, status int, code string) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
	return httpErr
}

