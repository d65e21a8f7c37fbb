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

type ProfileRepository struct {
	server *server.Server
}

func NewProfileRepository(s *server.Server) *ProfileRepository {
	return &ProfileRepository{server: s}
}

const profileColumns = `
	id,
	COALESCE(auth_user_id, '') AS auth_user_id,
	username,
	COALESCE(full_name, '') AS full_name,
	COALESCE(email, '') AS email,
	COALESCE(avatar_url, '') AS avatar_url,
	is_public,
	created_at,
	updated_at
`

// GetPublicProfiles returns public profiles, most recently updated first.
func (r *ProfileRepository) GetPublicProfiles(ctx context.Context, limit int) ([]model.Profile, error) {
	stmt := `
		SELECT` + profileColumns + `
		FROM
			profiles
		WHERE
			is_public = TRUE
		ORDER BY
			updated_at DESC
		LIMIT
			@limit
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get public profiles query: %w", err)
	}

	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Profile])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from %sprofiles: %w", sqlerr.TablePrefix, err)
	}

	return profiles, nil
}

// GetProfileByID returns one profile. A missing profile maps to 404 through sqlerr.
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	stmt := `
		SELECT` + profileColumns + `
		FROM
			profiles
		WHERE
			id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get profile by id query: %w", err)
	}

	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Profile])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from %sprofiles: %w", sqlerr.TablePrefix, err)
	}

	return &profile, nil
}

// GetProfileByAuthUserID resolves the profile owned by a Clerk user.
func (r *ProfileRepository) GetProfileByAuthUserID(ctx context.Context, authUserID string) (*model.Profile, error) {
	stmt := `
		SELECT` + profileColumns + `
		FROM
			profiles
		WHERE
			auth_user_id = @auth_user_id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"auth_user_id": authUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get profile by auth user id query: %w", err)
	}

	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Profile])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from %sprofiles: %w", sqlerr.TablePrefix, err)
	}

	return &profile, nil
}
