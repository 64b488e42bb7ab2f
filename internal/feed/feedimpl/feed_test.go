package feedimpl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/feed/feedimpl"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	mock_comment "github.com/whispr-campus/whispr/internal/repositories/comment/mocks"
	mock_post "github.com/whispr-campus/whispr/internal/repositories/post/mocks"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	mock_reaction "github.com/whispr-campus/whispr/internal/repositories/reaction/mocks"
	"github.com/whispr-campus/whispr/internal/repositories/university"
	mock_university "github.com/whispr-campus/whispr/internal/repositories/university/mocks"
	whisprerrors "github.com/whispr-campus/whispr/pkg/errors"
	"github.com/whispr-campus/whispr/pkg/logger"
)

var now = time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

type fixture struct {
	universities *mock_university.MockRepository
	posts        *mock_post.MockRepository
	comments     *mock_comment.MockRepository
	reactions    *mock_reaction.MockRepository
	feed         *feedimpl.FeedImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		universities: mock_university.NewMockRepository(ctrl),
		posts:        mock_post.NewMockRepository(ctrl),
		comments:     mock_comment.NewMockRepository(ctrl),
		reactions:    mock_reaction.NewMockRepository(ctrl),
	}
	f.feed = feedimpl.New(feedimpl.Opts{
		UniversityRepo: f.universities,
		PostRepo:       f.posts,
		CommentRepo:    f.comments,
		ReactionRepo:   f.reactions,
		Clock:          clockwork.NewFakeClockAt(now),
		Logger:         logger.NewNop(),
	})
	return f
}

func livePost() *domain.Post {
	p := domain.NewPost(uuid.New(), "Who else is at the library?", "unilag", domain.ColorGreen, now.Add(-time.Hour))
	p.ViewsCount = 4
	return &p
}

func TestLatestClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 0, want: 20},
		{in: -5, want: 20},
		{in: 50, want: 50},
		{in: 1000, want: 100},
	}

	for _, tt := range tests {
		f := newFixture(t)
		f.posts.EXPECT().GetLatest(gomock.Any(), now, tt.want).Return(nil, nil)

		_, err := f.feed.Latest(context.Background(), tt.in)
		require.NoError(t, err)
	}
}

func TestByUniversity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := livePost()

	f.universities.EXPECT().GetByID(ctx, "unilag").Return(&domain.University{ID: "unilag"}, nil)
	f.posts.EXPECT().GetLatestByUniversity(ctx, "unilag", now, 20).Return([]*domain.Post{p}, nil)

	posts, err := f.feed.ByUniversity(ctx, "unilag", 0)

	require.NoError(t, err)
	assert.Equal(t, []*domain.Post{p}, posts)
}

func TestByUniversityUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.universities.EXPECT().GetByID(ctx, "atlantis").Return(nil, university.ErrNotFound)

	_, err := f.feed.ByUniversity(ctx, "atlantis", 10)

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrNotFound))
}

func TestOpenCountsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := livePost()

	f.posts.EXPECT().GetByID(ctx, p.ID).Return(p, nil)
	f.posts.EXPECT().IncrementViews(ctx, p.ID).Return(nil)

	got, err := f.feed.Open(ctx, p.ID)

	require.NoError(t, err)
	assert.Equal(t, 5, got.ViewsCount)
}

func TestOpenIgnoresFailedIncrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := livePost()

	f.posts.EXPECT().GetByID(ctx, p.ID).Return(p, nil)
	f.posts.EXPECT().IncrementViews(ctx, p.ID).Return(post.ErrNotFound)

	got, err := f.feed.Open(ctx, p.ID)

	require.NoError(t, err)
	assert.Equal(t, 4, got.ViewsCount)
}

func TestOpenMissingPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.posts.EXPECT().GetByID(ctx, id).Return(nil, post.ErrNotFound)

	_, err := f.feed.Open(ctx, id)

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrNotFound))
}

func TestOpenExpiredPostIsGone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := domain.NewPost(uuid.New(), "old news", "ui", domain.ColorBlue, now.Add(-8*24*time.Hour))

	f.posts.EXPECT().GetByID(ctx, p.ID).Return(&p, nil)

	_, err := f.feed.Open(ctx, p.ID)

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrNotFound))
}

func TestLike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	postID := uuid.New()

	f.reactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r domain.Reaction) error {
		assert.Equal(t, postID, r.PostID)
		assert.Equal(t, domain.ReactionLike, r.ReactionType)
		assert.Equal(t, now.Add(7*24*time.Hour), r.ExpiresAt)
		return nil
	})

	applied, err := f.feed.Like(ctx, postID)

	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLikeMissingPostIsSoft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.reactions.EXPECT().Create(ctx, gomock.Any()).Return(reaction.ErrPostNotFound)

	applied, err := f.feed.Like(ctx, uuid.New())

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLikeStoreFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.reactions.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection reset"))

	_, err := f.feed.Like(ctx, uuid.New())

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrStoreWriteFailed))
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	postID := uuid.New()
	c := domain.NewComment(uuid.New(), postID, "same", now)

	f.comments.EXPECT().GetByPostID(ctx, postID, now, 100).Return([]*domain.Comment{&c}, nil)

	comments, err := f.feed.Comments(ctx, postID, 500)

	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
