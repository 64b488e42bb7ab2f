package post

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

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

var selectColumns = []string{
	"p.id", "p.content", "p.image_url", "p.video_url", "p.university_id", "p.color",
	"p.likes_count", "p.comments_count", "p.views_count", "p.created_at", "p.expires_at",
	"COALESCE(u.name, '')", "COALESCE(u.short_name, '')",
}

func selectPosts() sq.SelectBuilder {
	return repositories.SqBuilder.
		Select(selectColumns...).
		From("posts p").
		LeftJoin("universities u ON u.id = p.university_id")
}

func insertQuery(post domain.Post) (string, []interface{}, error) {
	return repositories.SqBuilder.
		Insert("posts").
		Columns(
			"id", "content", "image_url", "video_url", "university_id", "color",
			"likes_count", "comments_count", "views_count", "created_at", "expires_at",
		).
		Values(
			post.ID, post.Content, post.ImageURL, post.VideoURL, post.UniversityID, string(post.Color),
			0, 0, 0, post.CreatedAt, post.ExpiresAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

func (p *Pgx) Create(ctx context.Context, post domain.Post) (bool, error) {
	query, args, err := insertQuery(post)
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return false, ErrUnknownUniversity
		}
		return false, fmt.Errorf("failed to create post: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (p *Pgx) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := selectPosts().
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	post, err := scanPost(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// latestQuery selects live posts newest first; an empty universityID means
// every campus.
func latestQuery(universityID string, now time.Time, limit int) sq.SelectBuilder {
	b := selectPosts().Where(sq.Gt{"p.expires_at": now})
	if universityID != "" {
		b = b.Where(sq.Eq{"p.university_id": universityID})
	}
	return b.OrderBy("p.created_at DESC").Limit(uint64(limit))
}

func (p *Pgx) GetLatest(ctx context.Context, now time.Time, limit int) ([]*domain.Post, error) {
	query, args, err := latestQuery("", now, limit).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.query(ctx, query, args...)
}

func (p *Pgx) GetLatestByUniversity(ctx context.Context, universityID string, now time.Time, limit int) ([]*domain.Post, error) {
	query, args, err := latestQuery(universityID, now, limit).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.query(ctx, query, args...)
}

func (p *Pgx) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query, args, err := repositories.IncrementQuery("posts", "views_count", id)
	if err != nil {
		return err
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment views for post %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Pgx) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := repositories.DeleteExpiredQuery("posts", now)
	if err != nil {
		return 0, err
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired posts: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (p *Pgx) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Post, error) {
	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		post  domain.Post
		color string
	)
	err := row.Scan(
		&post.ID,
		&post.Content,
		&post.ImageURL,
		&post.VideoURL,
		&post.UniversityID,
		&color,
		&post.LikesCount,
		&post.CommentsCount,
		&post.ViewsCount,
		&post.CreatedAt,
		&post.ExpiresAt,
		&post.UniversityName,
		&post.UniversityShortName,
	)
	if err != nil {
		return nil, err
	}
	post.Color = domain.Color(color)
	return &post, nil
}
