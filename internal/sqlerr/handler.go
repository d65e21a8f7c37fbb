package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alpereneser/connectlist-sub003/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TablePrefix tags a wrapped ErrNoRows with the table it came from:
//
//	fmt.Errorf("%snotifications: %w", sqlerr.TablePrefix, pgx.ErrNoRows)
const TablePrefix = "table:"

// Postgres names constraints "<table>_<column>_<kind>" unless told otherwise.
var constraintSuffixes = []string{"_fkey", "_key", "_check"}

// ErrCode reports the Code of err, or Other when err is not an *Error.
func ErrCode(err error) Code {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Column returns the offending column. Postgres leaves ColumnName empty
// for foreign key, unique and check violations, so it falls back to the
// default constraint name of the table.
func (e *Error) Column() string {
	if e.ColumnName != "" {
		return e.ColumnName
	}
	if e.TableName == "" {
		return ""
	}

	for _, suffix := range constraintSuffixes {
		name, ok := strings.CutSuffix(e.ConstraintName, suffix)
		if !ok {
			continue
		}
		column, ok := strings.CutPrefix(name, e.TableName+"_")
		if !ok {
			return ""
		}
		return column
	}

	return ""
}

// HandleError maps a repository error onto the *errs.HTTPError sent to
// clients.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: 400 for constraint violations, 500 otherwise
//   - ErrNoRows: 404, naming the entity when wrapped with TablePrefix
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromDatabaseError(ConvertPgError(pgErr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		if table := taggedTable(err.Error()); table != "" {
			return errs.NewNotFoundError(singular(table)+" not found", true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

func fromDatabaseError(e *Error) error {
	column := e.Column()
	field := humanize(column)

	switch e.Code {
	case ForeignKeyViolation:
		entity := referencedEntity(column)
		code := errorCode(entity, "not found")
		return errs.NewBadRequestError(
			fmt.Sprintf("The referenced %s does not exist", entity),
			true, &code, fieldErrors(column, "does not exist"), nil,
		)

	case UniqueViolation:
		entity := singular(e.TableName)
		code := errorCode(entity, "already exists")
		if field == "" {
			field = "identifier"
		}
		return errs.NewBadRequestError(
			fmt.Sprintf("A %s with this %s already exists", entity, field),
			true, &code, fieldErrors(column, "already exists"), nil,
		)

	case NotNullViolation:
		if field == "" {
			field = "field"
		}
		code := errorCode(field, "required")
		return errs.NewBadRequestError(
			fmt.Sprintf("The %s is required", field),
			true, &code, fieldErrors(column, "is required"), nil,
		)

	case CheckViolation:
		code := errorCode(firstNonEmpty(field, singular(e.TableName)), "invalid")
		message := "One or more values do not meet required conditions"
		if field != "" {
			message = fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return errs.NewBadRequestError(message, true, &code, fieldErrors(column, "is invalid"), nil)

	case InvalidText:
		code := errorCode(singular(e.TableName), "invalid")
		return errs.NewBadRequestError("One or more values have an invalid format", true, &code, nil, nil)

	default:
		return errs.NewInternalServerError()
	}
}

// taggedTable extracts "notifications" from "...table:notifications: no rows".
func taggedTable(msg string) string {
	_, rest, ok := strings.Cut(msg, TablePrefix)
	if !ok {
		return ""
	}
	table, _, _ := strings.Cut(rest, ":")
	return strings.TrimSpace(table)
}

// referencedEntity turns "recipient_id" into "Recipient".
func referencedEntity(column string) string {
	if column == "" {
		return "Record"
	}
	return humanize(strings.TrimSuffix(strings.ToLower(column), "_id"))
}

// singular turns "list_likes" into "List Like".
func singular(table string) string {
	if table == "" {
		return "Record"
	}
	if len(table) > 1 {
		table = strings.TrimSuffix(table, "s")
	}
	return humanize(table)
}

// humanize turns "first_name" into "First Name".
func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// errorCode builds codes such as RECIPIENT_NOT_FOUND or PROFILE_ALREADY_EXISTS.
func errorCode(subject, action string) string {
	return errs.MakeUpperCaseWithUnderscores(subject + " " + action)
}

func fieldErrors(column, msg string) []errs.FieldError {
	if column == "" {
		return nil
	}
	return []errs.FieldError{{Field: strings.ToLower(column), Error: msg}}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
