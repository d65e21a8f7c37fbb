package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/alpereneser/connectlist-sub003/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantFields []errs.FieldError
	}{
		{
			name: "foreign key names the referenced column",
			err: fmt.Errorf("failed to insert notification: %w", &pgconn.PgError{
				Code:           "23503",
				Severity:       "ERROR",
				TableName:      "notifications",
				ConstraintName: "notifications_recipient_id_fkey",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECIPIENT_NOT_FOUND",
			wantMsg:    "The referenced Recipient does not exist",
			wantFields: []errs.FieldError{{Field: "recipient_id", Error: "does not exist"}},
		},
		{
			name: "foreign key with a custom constraint name",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "lists",
				ConstraintName: "fk_owner",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RECORD_NOT_FOUND",
			wantMsg:    "The referenced Record does not exist",
		},
		{
			name: "unique violation on a multi word column",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "profiles",
				ConstraintName: "profiles_auth_user_id_key",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PROFILE_ALREADY_EXISTS",
			wantMsg:    "A Profile with this Auth User Id already exists",
			wantFields: []errs.FieldError{{Field: "auth_user_id", Error: "already exists"}},
		},
		{
			name: "unique violation on a composite key",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "list_likes",
				ConstraintName: "list_likes_pkey",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "LIST_LIKE_ALREADY_EXISTS",
			wantMsg:    "A List Like with this identifier already exists",
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "notifications",
				ColumnName: "actor_id",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ACTOR_ID_REQUIRED",
			wantMsg:    "The Actor Id is required",
			wantFields: []errs.FieldError{{Field: "actor_id", Error: "is required"}},
		},
		{
			name: "column check violation",
			err: &pgconn.PgError{
				Code:           "23514",
				TableName:      "lists",
				ConstraintName: "lists_category_check",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "CATEGORY_INVALID",
			wantMsg:    "The Category value does not meet required conditions",
			wantFields: []errs.FieldError{{Field: "category", Error: "is invalid"}},
		},
		{
			name: "table check violation",
			err: &pgconn.PgError{
				Code:           "23514",
				TableName:      "follows",
				ConstraintName: "follows_check",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FOLLOW_INVALID",
			wantMsg:    "One or more values do not meet required conditions",
		},
		{
			name:       "invalid text",
			err:        &pgconn.PgError{Code: "22P02", TableName: "lists"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "LIST_INVALID",
			wantMsg:    "One or more values have an invalid format",
		},
		{
			name:       "connection failure",
			err:        &pgconn.PgError{Code: "08006", Message: "connection failure"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "tagged no rows",
			err:        fmt.Errorf("failed to update %snotifications: %w", TablePrefix, pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Notification not found",
		},
		{
			name:       "untagged no rows",
			err:        pgx.ErrNoRows,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Resource not found",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)

			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.Equal(t, tt.wantFields, httpErr.Errors)
		})
	}
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	orig := errs.NewUnauthorizedError("Authentication required", true)

	got := HandleError(fmt.Errorf("wrapped: %w", orig))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Same(t, orig, httpErr)
}

func TestErrorColumn(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"explicit column", Error{TableName: "lists", ColumnName: "title"}, "title"},
		{"foreign key", Error{TableName: "list_items", ConstraintName: "list_items_list_id_fkey"}, "list_id"},
		{"unique", Error{TableName: "profiles", ConstraintName: "profiles_username_key"}, "username"},
		{"other table prefix", Error{TableName: "lists", ConstraintName: "profiles_username_key"}, ""},
		{"primary key", Error{TableName: "follows", ConstraintName: "follows_pkey"}, ""},
		{"no table", Error{ConstraintName: "lists_user_id_fkey"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Column())
		})
	}
}

func TestErrCode(t *testing.T) {
	dbErr := ConvertPgError(&pgconn.PgError{Code: "23505"})

	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("insert: %w", dbErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}
