package email

import (
	"context"
	"strings"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/resend/resend-go/v2"
)

// ResendProvider sends through the Resend API.
type ResendProvider struct {
	client *resend.Client
	apiKey string
}

func NewResendProvider(apiKey string) *ResendProvider {
	return &ResendProvider{
		client: resend.NewClient(apiKey),
		apiKey: strings.TrimSpace(apiKey),
	}
}

func (p *ResendProvider) Name() model.EmailProvider {
	return model.EmailProviderResend
}

func (p *ResendProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *ResendProvider) Send(ctx context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", err
	}

	return sent.Id, nil
}
