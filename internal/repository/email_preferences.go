package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EmailPreferencesRepository struct {
	server *server.Server
}

func NewEmailPreferencesRepository(s *server.Server) *EmailPreferencesRepository {
	return &EmailPreferencesRepository{server: s}
}

// GetEmailPreferences returns the user's preferences, or the defaults when
// the user never saved any.
func (r *EmailPreferencesRepository) GetEmailPreferences(ctx context.Context, userID uuid.UUID) (*model.EmailPreferences, error) {
	stmt := `
		SELECT
			user_id,
			new_follower,
			list_comment,
			list_like,
			weekly_digest,
			updated_at
		FROM
			email_preferences
		WHERE
			user_id = @user_id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"user_id": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get email preferences query: %w", err)
	}

	prefs, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.EmailPreferences])
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DefaultEmailPreferences(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:email_preferences: %w", err)
	}

	return &prefs, nil
}
