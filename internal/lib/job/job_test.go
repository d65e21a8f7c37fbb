package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	configured bool
	sent       []*email.Message
}

func (r *recordingProvider) Name() model.EmailProvider { return model.EmailProviderResend }
func (r *recordingProvider) Configured() bool          { return r.configured }
func (r *recordingProvider) Send(_ context.Context, msg *email.Message) (string, error) {
	r.sent = append(r.sent, msg)
	return "re-1", nil
}

func newJobService(provider email.Provider) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(email.NewClientWithProviders("ConnectList <n@connectlist.me>", &logger, provider))
	return j
}

func TestNewNotificationEmailTask(t *testing.T) {
	task, err := NewNotificationEmailTask(NotificationEmailPayload{
		To:       "a@b.co",
		Template: email.TemplateNewFollower,
		Data:     map[string]string{"ActorName": "Ayşe"},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskNotificationEmail, task.Type())

	var p NotificationEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, email.TemplateNewFollower, p.Template)
}

func TestHandleNotificationEmailTask(t *testing.T) {
	provider := &recordingProvider{configured: true}
	j := newJobService(provider)

	task, err := NewNotificationEmailTask(NotificationEmailPayload{
		To:       "a@b.co",
		Template: email.TemplateListLike,
		Data:     map[string]string{"ActorName": "Zeynep", "RecipientName": "Alperen"},
	})
	require.NoError(t, err)

	require.NoError(t, j.handleNotificationEmailTask(context.Background(), task))
	require.Len(t, provider.sent, 1)
	assert.Equal(t, "Zeynep liked your list", provider.sent[0].Subject)
	assert.Contains(t, provider.sent[0].HTML, "Zeynep")
}

func TestHandleNotificationEmailTask_SkipsRetry(t *testing.T) {
	t.Run("bad payload", func(t *testing.T) {
		j := newJobService(&recordingProvider{configured: true})
		err := j.handleNotificationEmailTask(context.Background(), asynq.NewTask(TaskNotificationEmail, []byte("{")))
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("provider not configured", func(t *testing.T) {
		provider := &recordingProvider{}
		j := newJobService(provider)
		task, err := NewNotificationEmailTask(NotificationEmailPayload{To: "a@b.co", Template: email.TemplateListLike})
		require.NoError(t, err)

		err = j.handleNotificationEmailTask(context.Background(), task)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
		assert.Empty(t, provider.sent)
	})
}
