package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"learnql/internal/service"
	"learnql/pkg/pagination"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	ErrBuildingQuery = errors.New("error building sql-query")
	ErrInvalidWindow = errors.New("invalid keyset window")
)

//go:embed migrations/schema.sql
var schemaSQL string

// Storage is embedded by every postgres adapter. Queries run inside the
// transaction carried by ctx when there is one.
type Storage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func (s Storage) tr(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.db)
}

// Migrate creates the tables that are missing. It is safe to run repeatedly.
func Migrate(ctx context.Context, db trmpgx.Tr) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// applyWindow restricts qb to one keyset page over keyColumn.
func applyWindow(qb sq.SelectBuilder, keyColumn string, w pagination.Window) (sq.SelectBuilder, error) {
	if w.Limit < 0 {
		return qb, fmt.Errorf("%w: negative limit", ErrInvalidWindow)
	}

	if w.Cursor != nil {
		switch w.Op {
		case pagination.OpGt:
			qb = qb.Where(sq.Gt{keyColumn: *w.Cursor})
		case pagination.OpGtOrEq:
			qb = qb.Where(sq.GtOrEq{keyColumn: *w.Cursor})
		case pagination.OpLt:
			qb = qb.Where(sq.Lt{keyColumn: *w.Cursor})
		case pagination.OpLtOrEq:
			qb = qb.Where(sq.LtOrEq{keyColumn: *w.Cursor})
		default:
			return qb, fmt.Errorf("%w: cursor without comparison", ErrInvalidWindow)
		}
	}

	return qb.
		OrderBy(fmt.Sprintf("%s %s", keyColumn, w.Order)).
		Limit(uint64(w.Limit)), nil
}

// mapError translates driver errors into service errors, wrapping anything
// else with the operation name.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return service.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, service.ErrConflict, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, service.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapDeleteError is mapError for DELETE statements, where a foreign key
// violation means other rows still reference the deleted one.
func mapDeleteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %w: still referenced (%s)", op, service.ErrConflict, pgErr.ConstraintName)
	}
	return mapError(op, err)
}

// queryAll runs a select built by qb and scans every row with scan.
func queryAll[T any](ctx context.Context, tr trmpgx.Tr, op string, qb sq.SelectBuilder, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("exec "+op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", op, err)
	}
	return out, nil
}

// queryOne runs a statement returning a single row.
func queryOne[T any](ctx context.Context, tr trmpgx.Tr, op string, b sq.Sqlizer, scan func(pgx.Row) (T, error)) (T, error) {
	var zero T

	query, args, err := b.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	out, err := scan(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return zero, mapError("exec "+op, err)
	}
	return out, nil
}

// execOne runs a statement that must affect exactly one row.
func execOne(ctx context.Context, tr trmpgx.Tr, op string, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		if strings.HasPrefix(query, "DELETE") {
			return mapDeleteError("exec "+op, err)
		}
		return mapError("exec "+op, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
