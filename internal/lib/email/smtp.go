package email

import (
	"context"
	"strings"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// SMTPSettings configures the SMTP relay.
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPProvider sends through a plain SMTP relay using go-mail.
type SMTPProvider struct {
	settings SMTPSettings
}

func NewSMTPProvider(settings SMTPSettings) *SMTPProvider {
	settings.Host = strings.TrimSpace(settings.Host)
	return &SMTPProvider{settings: settings}
}

func (p *SMTPProvider) Name() model.EmailProvider {
	return model.EmailProviderSMTP
}

func (p *SMTPProvider) Configured() bool {
	return p.settings.Host != ""
}

// Send relays msg and returns the generated Message-ID.
func (p *SMTPProvider) Send(ctx context.Context, msg *Message) (string, error) {
	m, err := p.buildMessage(msg)
	if err != nil {
		return "", err
	}

	client, err := gomail.NewClient(p.settings.Host, p.clientOptions()...)
	if err != nil {
		return "", errors.Wrap(err, "creating client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", err
	}

	return messageID(m), nil
}

func (p *SMTPProvider) buildMessage(msg *Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", msg.From)
	}
	if err := m.To(msg.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %q", msg.To)
	}
	m.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}

	m.SetMessageID()
	return m, nil
}

func (p *SMTPProvider) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if p.settings.Port > 0 {
		opts = append(opts, gomail.WithPort(p.settings.Port))
	}
	if p.settings.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(p.settings.Timeout))
	}
	if p.settings.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(p.settings.Username),
			gomail.WithPassword(p.settings.Password),
		)
	}
	return opts
}

func messageID(m *gomail.Msg) string {
	ids := m.GetGenHeader(gomail.HeaderMessageID)
	if len(ids) == 0 {
		return ""
	}
	return strings.Trim(ids[0], "<>")
}
