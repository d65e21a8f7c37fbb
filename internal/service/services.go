// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs business operations and
// calls repositories or third-party clients. Failures leave this layer
// as *errs.HTTPError so handlers can return them unchanged.
package service

import (
	"context"

	"github.com/alpereneser/connectlist-sub003/internal/lib/job"
	"github.com/alpereneser/connectlist-sub003/internal/repository"
	"github.com/alpereneser/connectlist-sub003/internal/server"
)

type Services struct {
	Auth         *AuthService
	Job          *job.JobService
	Email        *EmailService
	Places       *PlacesService
	Figma        *FigmaService
	AI           *AIService
	Sitemap      *SitemapService
	Notification *NotificationService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	aiService, err := NewAIService(context.Background(), s)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:         NewAuthService(s),
		Job:          s.Job,
		Email:        NewEmailService(s),
		Places:       NewPlacesService(s),
		Figma:        NewFigmaService(s),
		AI:           aiService,
		Sitemap:      NewSitemapService(s, repos.List, repos.Profile),
		Notification: NewNotificationService(s, repos.Notification, repos.EmailPreferences, repos.Profile),
	}, nil
}
