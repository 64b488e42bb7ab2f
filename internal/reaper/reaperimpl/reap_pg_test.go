package reaperimpl_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispr-campus/whispr/internal/db"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/reaper/reaperimpl"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
)

// Set WHISPR_TEST_DATABASE_URL to a disposable database to run these; the
// content tables are truncated.
const testDSNEnv = "WHISPR_TEST_DATABASE_URL"

type store struct {
	posts     *post.Pgx
	comments  *comment.PgxRepository
	reactions *reaction.PgxRepository
	reaper    *reaperimpl.ReaperImpl
}

func newStore(t *testing.T, now time.Time) *store {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}
	ctx := context.Background()

	migrator, err := db.Open(dsn)
	require.NoError(t, err)
	defer migrator.Close()
	require.NoError(t, migrator.Up(ctx))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "TRUNCATE posts, comments, reactions")
	require.NoError(t, err)

	log := logger.NewNop()
	s := &store{
		posts:     post.NewPgx(pool, log),
		comments:  comment.NewPgxRepository(pool, log),
		reactions: reaction.NewPgxRepository(pool, log),
	}

	cfg := &config.Config{}
	cfg.Postgres.Host = "test"
	cfg.Postgres.User = "test"
	cfg.Postgres.Name = "test"

	s.reaper = reaperimpl.New(reaperimpl.Opts{
		PostRepo:     s.posts,
		CommentRepo:  s.comments,
		ReactionRepo: s.reactions,
		Clock:        clockwork.NewFakeClockAt(now),
		Logger:       log,
		Config:       cfg,
	})
	return s
}

func TestReapRemovesExpiredPostWithLiveComment(t *testing.T) {
	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	s := newStore(t, now)
	ctx := context.Background()

	// Posted eight days ago, so it expired yesterday.
	expired := domain.NewPost(uuid.New(), "Who else failed MTH101", "unilag", domain.ColorPink, now.Add(-8*24*time.Hour))
	created, err := s.posts.Create(ctx, expired)
	require.NoError(t, err)
	require.True(t, created)

	// Commented two days ago while the post was live; expires next week.
	reply := domain.NewComment(uuid.New(), expired.ID, "me", now.Add(-2*24*time.Hour))
	created, err = s.comments.Create(ctx, reply)
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, reply.ExpiresAt.After(now))

	live := domain.NewPost(uuid.New(), "Library wifi is back", "ui", domain.ColorTeal, now.Add(-time.Hour))
	_, err = s.posts.Create(ctx, live)
	require.NoError(t, err)

	res, err := s.reaper.Reap(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Posts)

	_, err = s.posts.GetByID(ctx, expired.ID)
	assert.ErrorIs(t, err, post.ErrNotFound)
	_, err = s.comments.GetByID(ctx, reply.ID)
	assert.ErrorIs(t, err, comment.ErrNotFound)

	kept, err := s.posts.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "Library wifi is back", kept.Content)

	again, err := s.reaper.Reap(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ReapResult{}, again)
}

func TestExpiredPostRefusesNewCommentsAndLikes(t *testing.T) {
	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	s := newStore(t, now)
	ctx := context.Background()

	expired := domain.NewPost(uuid.New(), "Hostel light is out again", "unilag", domain.ColorPink, now.Add(-8*24*time.Hour))
	_, err := s.posts.Create(ctx, expired)
	require.NoError(t, err)

	_, err = s.comments.Create(ctx, domain.NewComment(uuid.New(), expired.ID, "same", now))
	assert.ErrorIs(t, err, comment.ErrPostNotFound)

	err = s.reactions.Create(ctx, domain.NewReaction(uuid.New(), expired.ID, domain.ReactionLike, now))
	assert.ErrorIs(t, err, reaction.ErrPostNotFound)

	stored, err := s.posts.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.CommentsCount)
	assert.Zero(t, stored.LikesCount)

	res, err := s.reaper.Reap(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ReapResult{Posts: 1}, res)
}
