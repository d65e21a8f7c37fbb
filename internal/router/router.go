// Package router builds the echo instance.
//
// It installs the global middleware chain and the error handler, then
// registers the system, function and /api/v1 route groups.
package router

import (
	"github.com/alpereneser/connectlist-sub003/internal/handler"
	"github.com/alpereneser/connectlist-sub003/internal/middleware"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerFunctionRoutes(router, h, middlewares)
	registerV1Routes(router, h, middlewares)

	return router
}
