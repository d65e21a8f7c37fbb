package router

import (
	"net/http"

	"github.com/alpereneser/connectlist-sub003/internal/handler"
	"github.com/alpereneser/connectlist-sub003/internal/middleware"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/labstack/echo/v4"
)

var (
	getMethods  = []string{http.MethodGet, http.MethodOptions}
	postMethods = []string{http.MethodPost, http.MethodOptions}
)

// registerFunctionRoutes mounts the serverless-compatible endpoints under
// their original paths. OPTIONS is matched on every path so preflight
// requests reach the CORS middleware, which answers them with 204. POST
// bodies are parsed as JSON regardless of their Content-Type.
func registerFunctionRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	fn := r.Group(middleware.FunctionsPathPrefix,
		m.Functions.CORS(),
		m.RateLimit.Limit(),
		m.Functions.JSONBody(),
	)

	fn.Match(postMethods, "/mailtrap-send", handler.Handle(
		h.Email.Handler, h.Email.SendMailtrap, http.StatusOK, &model.SendEmailRequest{},
	))
	fn.Match(postMethods, "/send-notification", handler.Handle(
		h.Email.Handler, h.Email.SendResend, http.StatusOK, &model.SendEmailRequest{},
	))
	fn.Match(postMethods, "/smtp-send", handler.Handle(
		h.Email.Handler, h.Email.SendSMTP, http.StatusOK, &model.SendEmailRequest{},
	))
	fn.Match(getMethods, "/email-test", handler.Handle(
		h.Email.Handler, h.Email.TestStatus, http.StatusOK, &model.EmailTestStatusRequest{},
	))
	fn.POST("/email-test", handler.Handle(
		h.Email.Handler, h.Email.SendTest, http.StatusOK, &model.EmailTestRequest{},
	))

	fn.Match(getMethods, "/google-places-photo", handler.Handle(
		h.Places.Handler, h.Places.Photo, http.StatusOK, &model.PlacePhotoRequest{},
	))
	fn.Match(getMethods, "/google-places-proxy", handler.HandleBlob(
		h.Places.Handler, h.Places.Proxy, http.StatusOK, &model.PlacesProxyRequest{},
		echo.MIMEApplicationJSONCharsetUTF8, "",
	))

	fn.Match(getMethods, "/figma-proxy", handler.HandleBlob(
		h.Figma.Handler, h.Figma.File, http.StatusOK, &model.FigmaFileRequest{},
		echo.MIMEApplicationJSONCharsetUTF8, "",
	))

	fn.Match(postMethods, "/gemini-generate", handler.Handle(
		h.AI.Handler, h.AI.Generate, http.StatusOK, &model.GenerateRequest{},
	))

	sitemap := handler.HandleBlob(
		h.Sitemap.Handler, h.Sitemap.Sitemap, http.StatusOK, &model.SitemapRequest{},
		echo.MIMEApplicationXMLCharsetUTF8, handler.SitemapCacheControl,
	)
	fn.Match(getMethods, "/sitemap", sitemap)
	r.GET("/sitemap", sitemap)
	r.GET("/sitemap.xml", sitemap)
}
