package publisherimpl_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/media"
	mock_media "github.com/whispr-campus/whispr/internal/media/mocks"
	mock_moderation "github.com/whispr-campus/whispr/internal/moderation/mocks"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/internal/publisher/publisherimpl"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	mock_comment "github.com/whispr-campus/whispr/internal/repositories/comment/mocks"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	mock_post "github.com/whispr-campus/whispr/internal/repositories/post/mocks"
	whisprerrors "github.com/whispr-campus/whispr/pkg/errors"
	"github.com/whispr-campus/whispr/pkg/logger"
)

var now = time.Date(2025, 5, 12, 21, 30, 0, 0, time.UTC)

type fixture struct {
	moderation *mock_moderation.MockClient
	uploader   *mock_media.MockUploader
	posts      *mock_post.MockRepository
	comments   *mock_comment.MockRepository
	publisher  *publisherimpl.PublisherImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		moderation: mock_moderation.NewMockClient(ctrl),
		uploader:   mock_media.NewMockUploader(ctrl),
		posts:      mock_post.NewMockRepository(ctrl),
		comments:   mock_comment.NewMockRepository(ctrl),
	}
	f.publisher = publisherimpl.New(publisherimpl.Opts{
		Moderation:  f.moderation,
		Uploader:    f.uploader,
		PostRepo:    f.posts,
		CommentRepo: f.comments,
		Clock:       clockwork.NewFakeClockAt(now),
		Logger:      logger.NewNop(),
	})
	return f
}

func approved() *domain.Verdict {
	return domain.NewVerdict(false, map[string]bool{"hate": false})
}

func TestPublishPostApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, "Finals week is killing me", domain.ContentKindPost).Return(approved(), nil)

	var stored domain.Post
	f.posts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Post) (bool, error) {
		stored = p
		return true, nil
	})

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "  Finals week is killing me  ",
		UniversityID: "unilag",
	})

	require.NoError(t, err)
	assert.Equal(t, publisher.StatePersisted, res.State)
	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Empty(t, res.Warnings)
	assert.True(t, res.Verdict.Approved)

	assert.Equal(t, res.ID, stored.ID)
	assert.Equal(t, "Finals week is killing me", stored.Content)
	assert.Equal(t, "unilag", stored.UniversityID)
	assert.True(t, stored.Color.Valid())
	assert.Equal(t, now, stored.CreatedAt)
	assert.Equal(t, now.Add(7*24*time.Hour), stored.ExpiresAt)
	assert.Zero(t, stored.LikesCount)
	assert.Zero(t, stored.CommentsCount)
	assert.Zero(t, stored.ViewsCount)
	assert.Nil(t, stored.ImageURL)
	assert.Nil(t, stored.VideoURL)
}

func TestPublishRejectedWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), domain.ContentKindPost).
		Return(domain.NewVerdict(true, map[string]bool{"harassment": true}), nil)

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "something hateful",
		UniversityID: "unilag",
		Media:        &media.File{ContentType: "image/png", Data: []byte("png")},
	})

	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrContentRejected))
	assert.Equal(t, "Content violates community guidelines and cannot be posted.", whisprerrors.GetMessage(err))
}

func TestPublishModerationUnavailableWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).
		Return(nil, whisprerrors.ModerationUnavailable(context.DeadlineExceeded))

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "hello campus",
		UniversityID: "ui",
	})

	assert.Nil(t, res)
	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrModerationUnavailable))
}

func TestPublishUnexpectedModerationErrorFailsClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "hello campus",
		UniversityID: "ui",
	})

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrModerationUnavailable))
}

func TestPublishMediaFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	file := media.File{Filename: "exam.png", ContentType: "image/png", Data: []byte("png")}

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.uploader.EXPECT().Upload(ctx, file).Return("", errors.New("bucket unreachable"))
	f.posts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Post) (bool, error) {
		assert.Nil(t, p.ImageURL)
		assert.Nil(t, p.VideoURL)
		return true, nil
	})

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "Library is packed",
		UniversityID: "unn",
		Media:        &file,
	})

	require.NoError(t, err)
	assert.Equal(t, publisher.StatePersisted, res.State)
	require.Len(t, res.Warnings, 1)
	assert.True(t, whisprerrors.Is(res.Warnings[0], whisprerrors.ErrMediaUploadFailed))
	assert.Empty(t, res.MediaURL)
}

func TestPublishRoutesVideoToVideoURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	file := media.File{Filename: "clip.mp4", ContentType: "video/mp4", Data: []byte("mp4")}

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.uploader.EXPECT().Upload(ctx, file).Return("https://cdn.whispr.app/post-media/clip.mp4", nil)
	f.posts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Post) (bool, error) {
		require.NotNil(t, p.VideoURL)
		assert.Equal(t, "https://cdn.whispr.app/post-media/clip.mp4", *p.VideoURL)
		assert.Nil(t, p.ImageURL)
		return true, nil
	})

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:         domain.ContentKindPost,
		Content:      "Convocation!",
		UniversityID: "abu",
		Media:        &file,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.whispr.app/post-media/clip.mp4", res.MediaURL)
}

func TestPublishInvalidInputMakesNoCalls(t *testing.T) {
	tests := []struct {
		name string
		sub  publisher.Submission
	}{
		{name: "empty", sub: publisher.Submission{Kind: domain.ContentKindPost, UniversityID: "ui"}},
		{name: "whitespace", sub: publisher.Submission{Kind: domain.ContentKindPost, Content: " \n\t ", UniversityID: "ui"}},
		{name: "post too long", sub: publisher.Submission{Kind: domain.ContentKindPost, Content: strings.Repeat("a", 281), UniversityID: "ui"}},
		{name: "comment too long", sub: publisher.Submission{Kind: domain.ContentKindComment, Content: strings.Repeat("é", 501), PostID: uuid.New()}},
		{name: "missing university", sub: publisher.Submission{Kind: domain.ContentKindPost, Content: "hi"}},
		{name: "missing post", sub: publisher.Submission{Kind: domain.ContentKindComment, Content: "hi"}},
		{name: "unknown kind", sub: publisher.Submission{Kind: "poll", Content: "hi", UniversityID: "ui"}},
		{name: "comment with media", sub: publisher.Submission{Kind: domain.ContentKindComment, Content: "hi", PostID: uuid.New(), Media: &media.File{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			res, err := f.publisher.Publish(context.Background(), tt.sub)

			assert.Nil(t, res)
			assert.True(t, whisprerrors.Is(err, whisprerrors.ErrInvalidInput))
		})
	}
}

func TestPublishAcceptsExactLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	content := strings.Repeat("ñ", domain.MaxPostLength)

	f.moderation.EXPECT().Moderate(ctx, content, domain.ContentKindPost).Return(approved(), nil)
	f.posts.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)

	_, err := f.publisher.Publish(ctx, publisher.Submission{Kind: domain.ContentKindPost, Content: content, UniversityID: "ui"})

	require.NoError(t, err)
}

func TestPublishIdempotentReplay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := uuid.New()
	image := "https://cdn.whispr.app/post-media/first.png"

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.posts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p domain.Post) (bool, error) {
		assert.Equal(t, key, p.ID)
		return false, nil
	})
	f.posts.EXPECT().GetByID(ctx, key).Return(&domain.Post{ID: key, Content: "hello again", UniversityID: "ui", ImageURL: &image}, nil)

	res, err := f.publisher.Publish(ctx, publisher.Submission{
		Kind:           domain.ContentKindPost,
		Content:        "hello again",
		UniversityID:   "ui",
		IdempotencyKey: key,
	})

	require.NoError(t, err)
	assert.Equal(t, key, res.ID)
	assert.True(t, res.Replayed)
	assert.Equal(t, image, res.MediaURL)
	assert.Equal(t, publisher.StatePersisted, res.State)
}

func TestPublishUnknownUniversity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.posts.EXPECT().Create(ctx, gomock.Any()).Return(false, post.ErrUnknownUniversity)

	_, err := f.publisher.Publish(ctx, publisher.Submission{Kind: domain.ContentKindPost, Content: "hi", UniversityID: "atlantis"})

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrInvalidInput))
}

func TestPublishStoreFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.posts.EXPECT().Create(ctx, gomock.Any()).Return(false, errors.New("connection reset"))

	res, err := f.publisher.Publish(ctx, publisher.Submission{Kind: domain.ContentKindPost, Content: "hi", UniversityID: "ui"})

	assert.Nil(t, res)
	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrStoreWriteFailed))
	assert.Equal(t, whisprerrors.CodeStoreWriteFailed, whisprerrors.CodeOf(err))
}

func TestPublishComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	postID := uuid.New()

	f.moderation.EXPECT().Moderate(ctx, "same here", domain.ContentKindComment).Return(approved(), nil)
	f.comments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c domain.Comment) (bool, error) {
		assert.Equal(t, postID, c.PostID)
		assert.Equal(t, now, c.CreatedAt)
		assert.Equal(t, now.Add(7*24*time.Hour), c.ExpiresAt)
		return true, nil
	})

	res, err := f.publisher.Publish(ctx, publisher.Submission{Kind: domain.ContentKindComment, Content: "same here", PostID: postID})

	require.NoError(t, err)
	assert.Equal(t, publisher.StatePersisted, res.State)
	assert.False(t, res.Replayed)
}

func TestPublishCommentOnMissingPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
	f.comments.EXPECT().Create(ctx, gomock.Any()).Return(false, comment.ErrPostNotFound)

	_, err := f.publisher.Publish(ctx, publisher.Submission{Kind: domain.ContentKindComment, Content: "hi", PostID: uuid.New()})

	assert.True(t, whisprerrors.Is(err, whisprerrors.ErrNotFound))
}

func TestPublishReusedKeyWithDifferentPost(t *testing.T) {
	tests := []struct {
		name     string
		existing domain.Post
	}{
		{name: "different content", existing: domain.Post{Content: "first message", UniversityID: "ui"}},
		{name: "different university", existing: domain.Post{Content: "second message", UniversityID: "unilag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			key := uuid.New()
			existing := tt.existing
			existing.ID = key

			f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
			f.posts.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)
			f.posts.EXPECT().GetByID(ctx, key).Return(&existing, nil)

			res, err := f.publisher.Publish(ctx, publisher.Submission{
				Kind:           domain.ContentKindPost,
				Content:        "second message",
				UniversityID:   "ui",
				IdempotencyKey: key,
			})

			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, whisprerrors.Is(err, whisprerrors.ErrIdempotencyConflict))
			assert.Equal(t, whisprerrors.CodeIdempotencyConflict, whisprerrors.CodeOf(err))
		})
	}
}

func TestPublishCommentReplay(t *testing.T) {
	postID := uuid.New()

	tests := []struct {
		name     string
		existing domain.Comment
		conflict bool
	}{
		{name: "same comment", existing: domain.Comment{PostID: postID, Content: "same here"}},
		{name: "different post", existing: domain.Comment{PostID: uuid.New(), Content: "same here"}, conflict: true},
		{name: "different content", existing: domain.Comment{PostID: postID, Content: "not this"}, conflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			key := uuid.New()
			existing := tt.existing
			existing.ID = key

			f.moderation.EXPECT().Moderate(ctx, gomock.Any(), gomock.Any()).Return(approved(), nil)
			f.comments.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)
			f.comments.EXPECT().GetByID(ctx, key).Return(&existing, nil)

			res, err := f.publisher.Publish(ctx, publisher.Submission{
				Kind:           domain.ContentKindComment,
				Content:        "same here",
				PostID:         postID,
				IdempotencyKey: key,
			})

			if tt.conflict {
				assert.Nil(t, res)
				assert.True(t, whisprerrors.Is(err, whisprerrors.ErrIdempotencyConflict))
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Replayed)
			assert.Equal(t, key, res.ID)
		})
	}
}
