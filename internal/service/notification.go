package service

import (
	"context"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/alpereneser/connectlist-sub003/internal/lib/job"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type notificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) (*model.Notification, error)
	GetNotifications(ctx context.Context, recipientID uuid.UUID, limit int, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
}

type emailPreferencesStore interface {
	GetEmailPreferences(ctx context.Context, userID uuid.UUID) (*model.EmailPreferences, error)
}

type profileStore interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetProfileByAuthUserID(ctx context.Context, authUserID string) (*model.Profile, error)
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type NotificationService struct {
	notifications notificationStore
	preferences   emailPreferencesStore
	profiles      profileStore
	queue         taskEnqueuer
	baseURL       string
	logger        *zerolog.Logger
}

func NewNotificationService(s *server.Server, notifications notificationStore, preferences emailPreferencesStore, profiles profileStore) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		preferences:   preferences,
		profiles:      profiles,
		queue:         s.Job.Client,
		baseURL:       s.Config.App.BaseURL,
		logger:        s.Logger,
	}
}

// Create stores a notification from the caller to the recipient and queues
// the matching email when the recipient allows it. A queueing failure is
// logged and does not fail the request.
func (s *NotificationService) Create(ctx context.Context, authUserID string, req *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error) {
	actor, err := s.caller(ctx, authUserID)
	if err != nil {
		return nil, err
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, errs.NewBadRequestError("recipient_id must be a valid UUID", true, nil, nil, nil)
	}
	if recipientID == actor.ID {
		return nil, errs.NewBadRequestError("You cannot notify yourself", true, nil, nil, nil)
	}

	n := &model.Notification{
		RecipientID: recipientID,
		ActorID:     actor.ID,
		Type:        req.Type,
		Message:     req.Message,
	}
	if req.ListID != "" {
		listID, err := uuid.Parse(req.ListID)
		if err != nil {
			return nil, errs.NewBadRequestError("list_id must be a valid UUID", true, nil, nil, nil)
		}
		n.ListID = &listID
	}

	stored, err := s.notifications.CreateNotification(ctx, n)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return &model.CreateNotificationResponse{
		ID:          stored.ID,
		EmailQueued: s.queueEmail(ctx, actor, stored),
	}, nil
}

func (s *NotificationService) queueEmail(ctx context.Context, actor *model.Profile, n *model.Notification) bool {
	log := logger.FromContext(ctx, s.logger).With().
		Str("notification_id", n.ID.String()).
		Str("type", string(n.Type)).
		Logger()

	template, ok := email.TemplateFor(n.Type)
	if !ok {
		return false
	}

	prefs, err := s.preferences.GetEmailPreferences(ctx, n.RecipientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load email preferences")
		return false
	}
	if !prefs.Allows(n.Type) {
		log.Debug().Msg("recipient opted out of this email")
		return false
	}

	recipient, err := s.profiles.GetProfileByID(ctx, n.RecipientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recipient profile")
		return false
	}
	if recipient.Email == "" {
		return false
	}

	task, err := job.NewNotificationEmailTask(job.NotificationEmailPayload{
		NotificationID: n.ID.String(),
		To:             recipient.Email,
		Template:       template,
		Data: map[string]string{
			"RecipientName": recipient.DisplayName(),
			"ActorName":     actor.DisplayName(),
			"Message":       n.Message,
			"ActionURL":     s.actionURL(actor, n),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build notification email task")
		return false
	}

	if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to enqueue notification email")
		return false
	}

	return true
}

func (s *NotificationService) actionURL(actor *model.Profile, n *model.Notification) string {
	if n.ListID != nil {
		return fmt.Sprintf("%s/list/%s", s.baseURL, n.ListID)
	}
	return fmt.Sprintf("%s/profile/%s", s.baseURL, actor.Username)
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, authUserID string, query *model.ListNotificationsQuery) (*model.ListNotificationsResponse, error) {
	caller, err := s.caller(ctx, authUserID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifications.GetNotifications(ctx, caller.ID, query.EffectiveLimit(), query.UnreadOnly)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	return &model.ListNotificationsResponse{Notifications: notifications}, nil
}

// MarkRead flags one of the caller's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, authUserID string, req *model.MarkNotificationReadRequest) error {
	caller, err := s.caller(ctx, authUserID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return errs.NewBadRequestError("id must be a valid UUID", true, nil, nil, nil)
	}

	if err := s.notifications.MarkNotificationRead(ctx, caller.ID, id); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}

// caller resolves the profile owned by the authenticated Clerk user.
func (s *NotificationService) caller(ctx context.Context, authUserID string) (*model.Profile, error) {
	if authUserID == "" {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}

	profile, err := s.profiles.GetProfileByAuthUserID(ctx, authUserID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return profile, nil
}
