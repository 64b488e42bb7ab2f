package feedimpl

import (
	"context"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	"github.com/whispr-campus/whispr/pkg/errors"
)

func (f *FeedImpl) Like(ctx context.Context, postID uuid.UUID) (bool, error) {
	if postID == uuid.Nil {
		return false, errors.InvalidInput("post is required")
	}

	r := domain.NewReaction(uuid.New(), postID, domain.ReactionLike, f.Clock.Now().UTC())
	if err := f.ReactionRepo.Create(ctx, r); err != nil {
		if errors.Is(err, reaction.ErrPostNotFound) {
			f.Logger.Warn("Like ignored, post is gone", "post_id", postID)
			return false, nil
		}
		f.Logger.Error("Failed to record like", "post_id", postID, "error", err)
		return false, errors.StoreWriteFailed(err, "failed to record like")
	}

	return true, nil
}
