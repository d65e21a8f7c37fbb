// Package email sends transactional email.
//
// Three providers are supported: Resend (resend-go), Mailtrap (HTTP send
// API) and plain SMTP (go-mail). Notification bodies are rendered from
// embedded HTML templates.
package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alpereneser/connectlist-sub003/internal/config"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/rs/zerolog"
)

// Message is a provider-agnostic email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Provider delivers a Message and returns the provider's message id.
type Provider interface {
	Name() model.EmailProvider
	Configured() bool
	Send(ctx context.Context, msg *Message) (string, error)
}

// NotConfiguredError is returned when a provider has no credentials.
type NotConfiguredError struct {
	Provider model.EmailProvider
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", providerLabel(e.Provider))
}

// UnknownProviderError is returned for a provider name the client does not know.
type UnknownProviderError struct {
	Provider model.EmailProvider
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown email provider %q", e.Provider)
}

// Client routes messages to the configured providers.
type Client struct {
	providers   map[model.EmailProvider]Provider
	order       []model.EmailProvider
	defaultFrom string
	logger      *zerolog.Logger
}

// NewClient creates a Client with every provider built from cfg.
// Providers without credentials are registered but report Configured() == false.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithProviders(cfg.Integration.EmailFrom, logger,
		NewResendProvider(cfg.Integration.ResendAPIKey),
		NewMailtrapProvider(cfg.Integration.MailtrapAPIToken, cfg.App.UpstreamTimeout),
		NewSMTPProvider(SMTPSettings{
			Host:     cfg.Integration.SMTPHost,
			Port:     cfg.Integration.SMTPPort,
			Username: cfg.Integration.SMTPUsername,
			Password: cfg.Integration.SMTPPassword,
			Timeout:  cfg.App.UpstreamTimeout,
		}),
	)
}

// NewClientWithProviders creates a Client from explicit providers.
func NewClientWithProviders(defaultFrom string, logger *zerolog.Logger, providers ...Provider) *Client {
	c := &Client{
		providers:   make(map[model.EmailProvider]Provider, len(providers)),
		defaultFrom: defaultFrom,
		logger:      logger,
	}
	for _, p := range providers {
		c.providers[p.Name()] = p
		c.order = append(c.order, p.Name())
	}
	return c
}

// DefaultFrom returns the sender used when a message has none.
func (c *Client) DefaultFrom() string {
	return c.defaultFrom
}

// Provider looks up a provider by name.
func (c *Client) Provider(name model.EmailProvider) (Provider, error) {
	p, ok := c.providers[name]
	if !ok {
		return nil, &UnknownProviderError{Provider: name}
	}
	return p, nil
}

// Status reports, in registration order, which providers are configured.
func (c *Client) Status() []model.EmailProviderStatus {
	statuses := make([]model.EmailProviderStatus, 0, len(c.order))
	for _, name := range c.order {
		statuses = append(statuses, model.EmailProviderStatus{
			Provider:   name,
			Configured: c.providers[name].Configured(),
		})
	}
	return statuses
}

// Send delivers msg through the named provider.
func (c *Client) Send(ctx context.Context, name model.EmailProvider, msg *Message) (string, error) {
	p, err := c.Provider(name)
	if err != nil {
		return "", err
	}
	if !p.Configured() {
		return "", &NotConfiguredError{Provider: name}
	}

	if strings.TrimSpace(msg.From) == "" {
		msg.From = c.defaultFrom
	}

	log := logger.FromContext(ctx, c.logger)

	id, err := p.Send(ctx, msg)
	if err != nil {
		log.Error().
			Err(err).
			Str("provider", string(name)).
			Str("to", msg.To).
			Msg("failed to send email")
		return "", err
	}

	log.Info().
		Str("provider", string(name)).
		Str("to", msg.To).
		Str("message_id", id).
		Msg("email sent")

	return id, nil
}

// IsNotConfigured reports whether err came from a provider without credentials.
func IsNotConfigured(err error) bool {
	var target *NotConfiguredError
	return errors.As(err, &target)
}

func providerLabel(p model.EmailProvider) string {
	switch p {
	case model.EmailProviderMailtrap:
		return "Mailtrap API token"
	case model.EmailProviderResend:
		return "Resend API key"
	case model.EmailProviderSMTP:
		return "SMTP host"
	default:
		return string(p)
	}
}

// DisplayName is the human name of a provider.
func DisplayName(p model.EmailProvider) string {
	switch p {
	case model.EmailProviderMailtrap:
		return "Mailtrap"
	case model.EmailProviderResend:
		return "Resend"
	case model.EmailProviderSMTP:
		return "SMTP"
	default:
		return string(p)
	}
}
