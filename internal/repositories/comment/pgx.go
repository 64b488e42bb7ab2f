package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/repositories"
	"github.com/whispr-campus/whispr/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("CommentRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func insertQuery(c domain.Comment) (string, []interface{}, error) {
	return repositories.SqBuilder.
		Insert("comments").
		Columns("id", "post_id", "content", "created_at", "expires_at").
		Values(c.ID, c.PostID, c.Content, c.CreatedAt, c.ExpiresAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

func (r *PgxRepository) Create(ctx context.Context, c domain.Comment) (bool, error) {
	query, args, err := insertQuery(c)
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	bumpQuery, bumpArgs, err := repositories.IncrementLiveQuery("posts", "comments_count", c.PostID, c.CreatedAt)
	if err != nil {
		return false, err
	}

	var created bool
	err = repositories.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		created = true

		bumped, err := tx.Exec(ctx, bumpQuery, bumpArgs...)
		if err != nil {
			return err
		}
		if bumped.RowsAffected() == 0 {
			return ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPostNotFound) || repositories.IsForeignKeyViolation(err) {
			return false, ErrPostNotFound
		}
		return false, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

func selectComments() sq.SelectBuilder {
	return repositories.SqBuilder.
		Select("id", "post_id", "content", "created_at", "expires_at").
		From("comments")
}

func (r *PgxRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := selectComments().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	c, err := scanComment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}
	return c, nil
}

func (r *PgxRepository) GetByPostID(ctx context.Context, postID uuid.UUID, now time.Time, limit int) ([]*domain.Comment, error) {
	query, args, err := selectComments().
		Where(sq.Eq{"post_id": postID}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for post %s: %w", postID, err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func (r *PgxRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := repositories.DeleteExpiredQuery("comments", now)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired comments: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.Content, &c.CreatedAt, &c.ExpiresAt); err != nil {
		return nil, err
	}
	return &c, nil
}
