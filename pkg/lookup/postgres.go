package lookup

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

// Querier runs a single-row query. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RowExists passes when query returns a true boolean for the value bound to $1.
// Queries are typically of the form "SELECT true FROM t WHERE col = $1" or
// "SELECT EXISTS (SELECT 1 FROM t WHERE col = $1)". No rows means false.
func RowExists[T any](q Querier, query string) validator.AsyncPredicate[T] {
	return rowPresence[T](q, query, true)
}

// RowAbsent is the inverse of RowExists.
func RowAbsent[T any](q Querier, query string) validator.AsyncPredicate[T] {
	return rowPresence[T](q, query, false)
}

func rowPresence[T any](q Querier, query string, want bool) validator.AsyncPredicate[T] {
	return func(ctx context.Context, _ T, value any) (bool, error) {
		arg, ok := subject(value)
		if !ok {
			return true, nil
		}
		var found bool
		if err := q.QueryRow(ctx, query, arg).Scan(&found); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return false, errors.Join(ErrLookupFailed, ErrPostgresLookup, err)
			}
			found = false
		}
		return found == want, nil
	}
}
