package reaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/repositories"
	"github.com/whispr-campus/whispr/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ReactionRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

// counterColumn is the post counter a reaction type feeds.
func counterColumn(t domain.ReactionType) string {
	switch t {
	case domain.ReactionLike:
		return "likes_count"
	default:
		return ""
	}
}

func (r *PgxRepository) Create(ctx context.Context, re domain.Reaction) error {
	query, args, err := repositories.SqBuilder.
		Insert("reactions").
		Columns("id", "post_id", "reaction_type", "created_at", "expires_at").
		Values(re.ID, re.PostID, string(re.ReactionType), re.CreatedAt, re.ExpiresAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	err = repositories.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		column := counterColumn(re.ReactionType)
		if column == "" {
			return nil
		}

		bumpQuery, bumpArgs, err := repositories.IncrementLiveQuery("posts", column, re.PostID, re.CreatedAt)
		if err != nil {
			return err
		}
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
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

func (r *PgxRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := repositories.DeleteExpiredQuery("reactions", now)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired reactions: %w", err)
	}

	return tag.RowsAffected(), nil
}
