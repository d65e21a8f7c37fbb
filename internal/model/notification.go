package model

import (
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/validation"
	"github.com/google/uuid"
)

// NotificationType is the social event that produced a notification.
type NotificationType string

const (
	NotificationTypeFollow  NotificationType = "follow"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeLike    NotificationType = "like"
)

// Notification is an in-app notification for a recipient.
type Notification struct {
	Base
	RecipientID uuid.UUID        `json:"recipient_id" db:"recipient_id"`
	ActorID     uuid.UUID        `json:"actor_id" db:"actor_id"`
	Type        NotificationType `json:"type" db:"type"`
	ListID      *uuid.UUID       `json:"list_id" db:"list_id"`
	Message     string           `json:"message" db:"message"`
	IsRead      bool             `json:"is_read" db:"is_read"`
}

// EmailPreferences are the per-user email opt-ins. A user without a row
// gets DefaultEmailPreferences.
type EmailPreferences struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	NewFollower  bool      `json:"new_follower" db:"new_follower"`
	ListComment  bool      `json:"list_comment" db:"list_comment"`
	ListLike     bool      `json:"list_like" db:"list_like"`
	WeeklyDigest bool      `json:"weekly_digest" db:"weekly_digest"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultEmailPreferences enables every transactional notification.
func DefaultEmailPreferences(userID uuid.UUID) *EmailPreferences {
	return &EmailPreferences{
		UserID:       userID,
		NewFollower:  true,
		ListComment:  true,
		ListLike:     true,
		WeeklyDigest: false,
	}
}

// Allows reports whether an email may be sent for the notification type.
func (p *EmailPreferences) Allows(t NotificationType) bool {
	switch t {
	case NotificationTypeFollow:
		return p.NewFollower
	case NotificationTypeComment:
		return p.ListComment
	case NotificationTypeLike:
		return p.ListLike
	default:
		return false
	}
}

// CreateNotificationRequest is the body of POST /api/v1/notifications.
type CreateNotificationRequest struct {
	RecipientID string           `json:"recipient_id" validate:"required,uuid"`
	Type        NotificationType `json:"type" validate:"required,oneof=follow comment like"`
	ListID      string           `json:"list_id" validate:"omitempty,uuid"`
	Message     string           `json:"message" validate:"omitempty,max=500"`
}

func (r *CreateNotificationRequest) Validate() error {
	if err := validation.Validator().Struct(r); err != nil {
		return err
	}
	if (r.Type == NotificationTypeComment || r.Type == NotificationTypeLike) && r.ListID == "" {
		return validation.CustomValidationErrors{
			{Field: "list_id", Message: "is required for comment and like notifications"},
		}
	}
	return nil
}

// CreateNotificationResponse returns the stored notification id.
type CreateNotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	EmailQueued bool      `json:"email_queued"`
}

// ListNotificationsQuery is the query of GET /api/v1/notifications.
type ListNotificationsQuery struct {
	Limit      int  `query:"limit" validate:"omitempty,min=1,max=100"`
	UnreadOnly bool `query:"unread_only"`
}

func (r *ListNotificationsQuery) Validate() error {
	return validation.Validator().Struct(r)
}

// DefaultNotificationsLimit applies when the query has no limit.
const DefaultNotificationsLimit = 20

// EffectiveLimit returns Limit or DefaultNotificationsLimit.
func (r *ListNotificationsQuery) EffectiveLimit() int {
	if r.Limit == 0 {
		return DefaultNotificationsLimit
	}
	return r.Limit
}

// ListNotificationsResponse wraps the caller's notifications.
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// MarkNotificationReadRequest addresses one notification by path id.
type MarkNotificationReadRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *MarkNotificationReadRequest) Validate() error {
	return validation.Validator().Struct(r)
}
