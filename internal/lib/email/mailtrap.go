package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/pkg/errors"
)

// MailtrapSendURL is the Mailtrap transactional send endpoint.
const MailtrapSendURL = "https://send.api.mailtrap.io/api/send"

// MailtrapProvider sends through the Mailtrap HTTP send API.
type MailtrapProvider struct {
	httpClient *http.Client
	token      string
	endpoint   string
}

func NewMailtrapProvider(token string, timeout time.Duration) *MailtrapProvider {
	return &MailtrapProvider{
		httpClient: &http.Client{Timeout: timeout},
		token:      strings.TrimSpace(token),
		endpoint:   MailtrapSendURL,
	}
}

type mailtrapAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailtrapRequest struct {
	From    mailtrapAddress   `json:"from"`
	To      []mailtrapAddress `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html,omitempty"`
	Text    string            `json:"text,omitempty"`
}

type mailtrapResponse struct {
	Success    bool     `json:"success"`
	MessageIDs []string `json:"message_ids"`
	Errors     []string `json:"errors"`
}

func (p *MailtrapProvider) Name() model.EmailProvider {
	return model.EmailProviderMailtrap
}

func (p *MailtrapProvider) Configured() bool {
	return p.token != ""
}

func (p *MailtrapProvider) Send(ctx context.Context, msg *Message) (string, error) {
	body, err := json.Marshal(mailtrapRequest{
		From:    parseAddress(msg.From),
		To:      []mailtrapAddress{{Email: msg.To}},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding mailtrap request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building mailtrap request")
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "reading mailtrap response")
	}

	var decoded mailtrapResponse
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !decoded.Success {
		if len(decoded.Errors) > 0 {
			return "", errors.New(strings.Join(decoded.Errors, "; "))
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if len(decoded.MessageIDs) == 0 {
		return "", errors.New("response carried no message id")
	}

	return decoded.MessageIDs[0], nil
}

// parseAddress splits "Name <addr>" so the display name survives.
func parseAddress(from string) mailtrapAddress {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return mailtrapAddress{Email: strings.TrimSpace(from)}
	}
	return mailtrapAddress{Email: addr.Address, Name: addr.Name}
}
