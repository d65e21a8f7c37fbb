// Package handler is the HTTP layer.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes the response. Handlers depend on small
// interfaces over the services so they can be tested with fakes.
package handler

import (
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Email        *EmailHandler
	Places       *PlacesHandler
	Figma        *FigmaHandler
	AI           *AIHandler
	Sitemap      *SitemapHandler
	Notification *NotificationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Email:        NewEmailHandler(s, services.Email),
		Places:       NewPlacesHandler(s, services.Places),
		Figma:        NewFigmaHandler(s, services.Figma),
		AI:           NewAIHandler(s, services.AI),
		Sitemap:      NewSitemapHandler(s, services.Sitemap),
		Notification: NewNotificationHandler(s, services.Notification),
	}
}
