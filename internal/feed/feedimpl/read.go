package feedimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/feed"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/internal/repositories/university"
	"github.com/whispr-campus/whispr/pkg/errors"
)

func (f *FeedImpl) Universities(ctx context.Context) ([]domain.University, error) {
	universities, err := f.UniversityRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load universities")
	}
	return universities, nil
}

func (f *FeedImpl) Latest(ctx context.Context, limit int) ([]*domain.Post, error) {
	posts, err := f.PostRepo.GetLatest(ctx, f.Clock.Now(), clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load posts")
	}
	return posts, nil
}

func (f *FeedImpl) ByUniversity(ctx context.Context, universityID string, limit int) ([]*domain.Post, error) {
	universityID = strings.TrimSpace(universityID)
	if universityID == "" {
		return nil, errors.InvalidInput("university is required")
	}

	if _, err := f.UniversityRepo.GetByID(ctx, universityID); err != nil {
		if errors.Is(err, university.ErrNotFound) {
			return nil, notFound("university not found")
		}
		return nil, errors.Wrap(err, "failed to load university")
	}

	posts, err := f.PostRepo.GetLatestByUniversity(ctx, universityID, f.Clock.Now(), clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load posts")
	}
	return posts, nil
}

// Open treats an expired post the reaper hasn't reached yet as gone.
func (f *FeedImpl) Open(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	p, err := f.PostRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, notFound("post not found")
		}
		return nil, errors.Wrap(err, "failed to load post")
	}
	if domain.Expired(p.ExpiresAt, f.Clock.Now()) {
		return nil, notFound("post not found")
	}

	if err := f.PostRepo.IncrementViews(ctx, postID); err != nil {
		f.Logger.Warn("View not counted", "post_id", postID, "error", err)
		return p, nil
	}
	p.ViewsCount++
	return p, nil
}

func (f *FeedImpl) Comments(ctx context.Context, postID uuid.UUID, limit int) ([]*domain.Comment, error) {
	comments, err := f.CommentRepo.GetByPostID(ctx, postID, f.Clock.Now(), clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comments")
	}
	return comments, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return feed.DefaultLimit
	case limit > feed.MaxLimit:
		return feed.MaxLimit
	default:
		return limit
	}
}

func notFound(message string) error {
	return errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, message)
}
