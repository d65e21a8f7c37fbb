package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/hibiken/asynq"
)

// handleNotificationEmailTask renders and sends one notification email.
// A returned error makes Asynq schedule a retry.
func (j *JobService) handleNotificationEmailTask(ctx context.Context, t *asynq.Task) error {
	var p NotificationEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal notification email payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.emailClient == nil {
		return fmt.Errorf("job handlers not initialized: %w", asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", string(p.Template)).
		Str("notification_id", p.NotificationID).
		Str("to", p.To).
		Logger()

	log.Info().Msg("processing notification email task")

	id, err := j.emailClient.SendNotificationEmail(ctx, p.To, p.Template, p.Data)
	if err != nil {
		if email.IsNotConfigured(err) {
			log.Warn().Err(err).Msg("dropping notification email")
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		log.Error().Err(err).Msg("failed to send notification email")
		return err
	}

	log.Info().Str("message_id", id).Msg("successfully sent notification email")
	return nil
}
