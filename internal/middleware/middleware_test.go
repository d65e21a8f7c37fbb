package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alpereneser/connectlist-sub003/internal/config"
	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	l := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"https://connectlist.me"}},
			App: config.AppConfig{
				RateLimit:      1,
				RateLimitBurst: 1,
			},
		},
		Logger: &l,
	}
}

func newTestEcho(s *server.Server) (*echo.Echo, *Middlewares) {
	m := NewMiddlewares(s)
	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext())
	return e, m
}

func serve(e *echo.Echo, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGlobalErrorHandler_FunctionEnvelope(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.POST(FunctionsPathPrefix+"/mailtrap-send", func(c echo.Context) error {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: "subject", Error: "is required"},
		}, nil)
	})

	rec := serve(e, http.MethodPost, FunctionsPathPrefix+"/mailtrap-send", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.FunctionErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "subject", body.Errors[0].Field)
}

func TestGlobalErrorHandler_HTTPErrorShape(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/api/v1/thing", func(c echo.Context) error {
		return errs.NewNotFoundError("Notification not found", true, nil)
	})

	rec := serve(e, http.MethodGet, "/api/v1/thing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Notification not found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.Status)
}

func TestGlobalErrorHandler_HidesUnknownErrors(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET(FunctionsPathPrefix+"/boom", func(c echo.Context) error {
		return assert.AnError
	})

	rec := serve(e, http.MethodGet, FunctionsPathPrefix+"/boom", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	e, _ := newTestEcho(newTestServer())

	rec := serve(e, http.MethodGet, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestFunctionsCORS_Preflight(t *testing.T) {
	e, m := newTestEcho(newTestServer())
	g := e.Group(FunctionsPathPrefix, m.Functions.CORS())
	g.Match([]string{http.MethodPost, http.MethodOptions}, "/mailtrap-send", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, http.MethodOptions, FunctionsPathPrefix+"/mailtrap-send", map[string]string{
		echo.HeaderOrigin:                     "https://example.org",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestFunctionsCORS_WithoutOrigin(t *testing.T) {
	e, m := newTestEcho(newTestServer())
	g := e.Group(FunctionsPathPrefix, m.Functions.CORS())
	g.Match([]string{http.MethodGet, http.MethodOptions}, "/sitemap", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	g.GET("/boom", func(c echo.Context) error {
		return errs.NewBadRequestError("Missing required fields", true, nil, nil, nil)
	})

	preflight := serve(e, http.MethodOptions, FunctionsPathPrefix+"/sitemap", nil)
	assert.Equal(t, http.StatusNoContent, preflight.Code)
	assert.Equal(t, "*", preflight.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, preflight.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	assert.Contains(t, preflight.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)

	get := serve(e, http.MethodGet, FunctionsPathPrefix+"/sitemap", nil)
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "*", get.Header().Get(echo.HeaderAccessControlAllowOrigin))

	failed := serve(e, http.MethodGet, FunctionsPathPrefix+"/boom", nil)
	assert.Equal(t, http.StatusBadRequest, failed.Code)
	assert.Equal(t, "*", failed.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestFunctionsJSONBody(t *testing.T) {
	type payload struct {
		To string `json:"to"`
	}

	e, m := newTestEcho(newTestServer())
	g := e.Group(FunctionsPathPrefix, m.Functions.JSONBody())
	g.POST("/send-notification", func(c echo.Context) error {
		var p payload
		if err := c.Bind(&p); err != nil {
			return err
		}
		return c.String(http.StatusOK, p.To)
	})

	for _, contentType := range []string{"", echo.MIMETextPlainCharsetUTF8, echo.MIMEApplicationJSON} {
		t.Run("content type "+contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, FunctionsPathPrefix+"/send-notification",
				strings.NewReader(`{"to":"ada@example.com"}`))
			if contentType != "" {
				req.Header.Set(echo.HeaderContentType, contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "ada@example.com", rec.Body.String())
		})
	}
}

func TestRateLimit_Denies(t *testing.T) {
	e, m := newTestEcho(newTestServer())
	g := e.Group(FunctionsPathPrefix, m.RateLimit.Limit())
	g.GET("/sitemap", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := serve(e, http.MethodGet, FunctionsPathPrefix+"/sitemap", nil)
	second := serve(e, http.MethodGet, FunctionsPathPrefix+"/sitemap", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "TOO_MANY_REQUESTS")
}

func TestRequestID(t *testing.T) {
	e, _ := newTestEcho(newTestServer())
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := serve(e, http.MethodGet, "/id", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = serve(e, http.MethodGet, "/id", nil)
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContext_RequestLoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer()
	l := zerolog.New(&buf)
	s.Logger = &l

	e, _ := newTestEcho(s)
	e.GET("/ctx", func(c echo.Context) error {
		logger.FromContext(c.Request().Context(), nil).Info().Msg("from service")
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, http.MethodGet, "/ctx", map[string]string{RequestIDHeader: "req-42"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"message":"from service"`)
}

func TestRedactQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/status", "/status"},
		{"/x?endpoint=details", "/x?endpoint=details"},
		{"/x?endpoint=details&key=secret", "/x?endpoint=details&key=REDACTED"},
		{"/x?key=secret&input=bar", "/x?key=REDACTED&input=bar"},
		{"/x?monkey=1", "/x?monkey=1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, redactQuery(tt.in))
		})
	}
}
