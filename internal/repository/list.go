package repository

import (
	"context"
	"fmt"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/alpereneser/connectlist-sub003/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

type ListRepository struct {
	server *server.Server
}

func NewListRepository(s *server.Server) *ListRepository {
	return &ListRepository{server: s}
}

// publicListsStmt selects every public list whatever its owner's profile
// visibility, most recently updated first.
const publicListsStmt = `
	SELECT
		l.id,
		l.user_id,
		l.title,
		COALESCE(l.description, '') AS description,
		l.category,
		l.is_public,
		l.created_at,
		l.updated_at
	FROM
		lists l
	WHERE
		l.is_public = TRUE
	ORDER BY
		l.updated_at DESC
	LIMIT
		@limit
`

// GetPublicLists returns public lists, most recently updated first.
func (r *ListRepository) GetPublicLists(ctx context.Context, limit int) ([]model.List, error) {
	rows, err := r.server.DB.Pool.Query(ctx, publicListsStmt, pgx.NamedArgs{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get public lists query: %w", err)
	}

	lists, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.List])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from %slists: %w", sqlerr.TablePrefix, err)
	}

	return lists, nil
}
