package service

import (
	"context"
	"errors"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
)

// DefaultTestProvider is used by email-test when the body names none.
const DefaultTestProvider = model.EmailProviderResend

const emailTestUsage = `POST {"to": "you@example.com", "provider": "resend|mailtrap|smtp"} to send a test message`

type EmailService struct {
	client *email.Client
}

func NewEmailService(s *server.Server) *EmailService {
	return &EmailService{client: s.Email}
}

// Send relays req through provider and returns the provider's message id.
func (s *EmailService) Send(ctx context.Context, provider model.EmailProvider, req *model.SendEmailRequest) (*model.SendEmailResponse, error) {
	id, err := s.client.Send(ctx, provider, &email.Message{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
	})
	if err != nil {
		return nil, emailError(provider, err)
	}

	return &model.SendEmailResponse{Success: true, ID: id}, nil
}

// SendTest sends the canned test message.
func (s *EmailService) SendTest(ctx context.Context, req *model.EmailTestRequest) (*model.SendEmailResponse, error) {
	provider := req.Provider
	if provider == "" {
		provider = DefaultTestProvider
	}

	id, err := s.client.SendTestEmail(ctx, provider, req.To)
	if err != nil {
		return nil, emailError(provider, err)
	}

	return &model.SendEmailResponse{Success: true, ID: id}, nil
}

// Status reports which providers are configured without exposing secrets.
func (s *EmailService) Status() *model.EmailTestStatusResponse {
	return &model.EmailTestStatusResponse{
		Success:     true,
		DefaultFrom: s.client.DefaultFrom(),
		Providers:   s.client.Status(),
		Usage:       emailTestUsage,
	}
}

func emailError(provider model.EmailProvider, err error) error {
	var notConfigured *email.NotConfiguredError
	if errors.As(err, &notConfigured) {
		return errs.NewConfigurationError(notConfigured.Error())
	}

	var unknown *email.UnknownProviderError
	if errors.As(err, &unknown) {
		return errs.NewBadRequestError(unknown.Error(), true, nil, nil, nil)
	}

	return errs.NewUpstreamError(email.DisplayName(provider), err)
}
