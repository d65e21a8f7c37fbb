package email

import (
	"context"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/model"
)

// NotificationProvider delivers notification emails.
const NotificationProvider = model.EmailProviderResend

var notificationSubjects = map[Template]string{
	TemplateNewFollower: "%s started following you on ConnectList",
	TemplateListComment: "%s commented on your list",
	TemplateListLike:    "%s liked your list",
}

// TemplateFor maps a notification type to its template.
func TemplateFor(t model.NotificationType) (Template, bool) {
	switch t {
	case model.NotificationTypeFollow:
		return TemplateNewFollower, true
	case model.NotificationTypeComment:
		return TemplateListComment, true
	case model.NotificationTypeLike:
		return TemplateListLike, true
	default:
		return "", false
	}
}

// Subject builds the subject line for a notification template.
func Subject(name Template, actorName string) string {
	format, ok := notificationSubjects[name]
	if !ok {
		return "ConnectList notification"
	}
	return fmt.Sprintf(format, actorName)
}

// SendTemplate renders name and delivers it through provider.
func (c *Client) SendTemplate(ctx context.Context, provider model.EmailProvider, to, subject string, name Template, data map[string]string) (string, error) {
	html, err := Render(name, data)
	if err != nil {
		return "", err
	}

	return c.Send(ctx, provider, &Message{
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

// SendNotificationEmail renders a notification template and sends it through Resend.
//
// data keys: RecipientName, ActorName, Message, ActionURL.
func (c *Client) SendNotificationEmail(ctx context.Context, to string, name Template, data map[string]string) (string, error) {
	return c.SendTemplate(ctx, NotificationProvider, to, Subject(name, data["ActorName"]), name, data)
}

// SendTestEmail sends the canned test message through provider.
func (c *Client) SendTestEmail(ctx context.Context, provider model.EmailProvider, to string) (string, error) {
	return c.SendTemplate(ctx, provider, to, "ConnectList email test", TemplateTest, map[string]string{
		"Provider": string(provider),
	})
}
