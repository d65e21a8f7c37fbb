package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds openapi.html and openapi.json, relative to the working directory.
const StaticDir = "static"

type OpenAPIHandler struct {
	Handler
	dir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		dir:     StaticDir,
	}
}

// ServeOpenAPIUI serves the docs page. The page loads /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(h.dir, "openapi.html"))
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}
