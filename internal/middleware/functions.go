package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// FunctionsPathPrefix is where the serverless-compatible endpoints live.
const FunctionsPathPrefix = "/.netlify/functions"

// IsFunctionRequest reports whether c targets a function endpoint.
func IsFunctionRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, FunctionsPathPrefix+"/")
}

// FunctionsMiddleware holds the middleware specific to function routes.
type FunctionsMiddleware struct{}

func NewFunctionsMiddleware() *FunctionsMiddleware {
	return &FunctionsMiddleware{}
}

var (
	functionMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	functionHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization}
)

const functionCORSMaxAge = 86400

// CORS allows any origin and answers preflight OPTIONS with 204. The
// headers are sent on every response, with or without an Origin header.
func (f *FunctionsMiddleware) CORS() echo.MiddlewareFunc {
	cors := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: functionMethods,
		AllowHeaders: functionHeaders,
		MaxAge:       functionCORSMaxAge,
	})

	allowMethods := strings.Join(functionMethods, ",")
	allowHeaders := strings.Join(functionHeaders, ",")
	maxAge := strconv.Itoa(functionCORSMaxAge)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := cors(next)
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			if c.Request().Method == http.MethodOptions {
				header.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
				header.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
				header.Set(echo.HeaderAccessControlMaxAge, maxAge)
			}
			return h(c)
		}
	}
}

// JSONBody makes POST bodies bind as JSON whatever Content-Type the
// client sent, so text/plain and missing types parse like the JSON they carry.
func (f *FunctionsMiddleware) JSONBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodPost &&
				!strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			return next(c)
		}
	}
}
