package job

import (
	"encoding/json"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/hibiken/asynq"
)

// TaskNotificationEmail is the task type for notification emails.
const TaskNotificationEmail = "email:notification"

// NotificationEmailPayload is the JSON payload of TaskNotificationEmail.
// Data holds the template variables (RecipientName, ActorName, ...).
type NotificationEmailPayload struct {
	NotificationID string            `json:"notification_id"`
	To             string            `json:"to"`
	Template       email.Template    `json:"template"`
	Data           map[string]string `json:"data"`
}

// NewNotificationEmailTask builds a notification email task: up to 3
// retries on the default queue with a 30 second deadline.
func NewNotificationEmailTask(p NotificationEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskNotificationEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
