package repository

import (
	"context"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct {
	server *server.Server
}

func NewNotificationRepository(s *server.Server) *NotificationRepository {
	return &NotificationRepository{server: s}
}

const notificationColumns = `
	id,
	recipient_id,
	actor_id,
	type,
	list_id,
	COALESCE(message, '') AS message,
	is_read,
	created_at
`

// CreateNotification inserts a notification and returns the stored row.
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	stmt := `
		INSERT INTO
			notifications (recipient_id, actor_id, type, list_id, message)
		VALUES
			(@recipient_id, @actor_id, @type, @list_id, NULLIF(@message, ''))
		RETURNING` + notificationColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"recipient_id": n.RecipientID,
		"actor_id":     n.ActorID,
		"type":         string(n.Type),
		"list_id":      n.ListID,
		"message":      n.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create notification query: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Notification])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from %snotifications: %w", sqlerr.TablePrefix, err)
	}

	return &created, nil
}

// GetNotifications returns the recipient's notifications, newest first.
func (r *NotificationRepository) GetNotifications(ctx context.Context, recipientID uuid.UUID, limit int, unreadOnly bool) ([]model.Notification, error) {
	stmt := `
		SELECT` + notificationColumns + `
		FROM
			notifications
		WHERE
			recipient_id = @recipient_id
			AND (NOT @unread_only OR is_read = FALSE)
		ORDER BY
			created_at DESC
		LIMIT
			@limit
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"recipient_id": recipientID,
		"unread_only":  unreadOnly,
		"limit":        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get notifications query: %w", err)
	}

	notifications, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from %snotifications: %w", sqlerr.TablePrefix, err)
	}

	return notifications, nil
}

// MarkNotificationRead flags one of the recipient's notifications as read.
// It returns a wrapped pgx.ErrNoRows when nothing matched.
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	stmt := `
		UPDATE notifications
		SET
			is_read = TRUE
		WHERE
			id = @id
			AND recipient_id = @recipient_id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"id":           notificationID,
		"recipient_id": recipientID,
	})
	if err != nil {
		return fmt.Errorf("failed to execute mark notification read query: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update %snotifications: %w", sqlerr.TablePrefix, pgx.ErrNoRows)
	}

	return nil
}
