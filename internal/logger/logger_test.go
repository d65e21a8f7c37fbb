package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var requestBuf, fallbackBuf bytes.Buffer
	request := zerolog.New(&requestBuf).With().Str("request_id", "r-1").Logger()
	fallback := zerolog.New(&fallbackBuf)

	t.Run("request logger", func(t *testing.T) {
		ctx := request.WithContext(context.Background())
		FromContext(ctx, &fallback).Info().Msg("hello")

		assert.Contains(t, requestBuf.String(), `"request_id":"r-1"`)
		assert.Empty(t, fallbackBuf.String())
	})

	t.Run("fallback outside a request", func(t *testing.T) {
		assert.Same(t, &fallback, FromContext(context.Background(), &fallback))
	})

	t.Run("nil fallback", func(t *testing.T) {
		l := FromContext(context.Background(), nil)
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})
}
