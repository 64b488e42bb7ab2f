package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

const pgForeignKeyViolation = "23503"

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// DeleteExpiredQuery builds the reaper delete for one content table. Each
// table carries its own expires_at so the predicate never joins.
func DeleteExpiredQuery(table string, now time.Time) (string, []interface{}, error) {
	query, args, err := SqBuilder.
		Delete(table).
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, ErrBadQuery
	}
	return query, args, nil
}

// IncrementQuery bumps a counter in place: SET col = col + 1.
func IncrementQuery(table, column string, id interface{}) (string, []interface{}, error) {
	query, args, err := SqBuilder.
		Update(table).
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, ErrBadQuery
	}
	return query, args, nil
}

// IncrementLiveQuery is IncrementQuery restricted to rows that have not
// expired at now. Zero rows affected means the parent is gone or expired.
func IncrementLiveQuery(table, column string, id interface{}, now time.Time) (string, []interface{}, error) {
	query, args, err := SqBuilder.
		Update(table).
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, ErrBadQuery
	}
	return query, args, nil
}

// WithTx runs fn in a transaction, committing only when fn succeeds.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
