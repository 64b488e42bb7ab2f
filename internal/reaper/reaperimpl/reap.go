package reaperimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/pkg/errors"
)

type pass struct {
	table  string
	delete func(ctx context.Context, now time.Time) (int64, error)
	count  *int64
}

// Reap deletes in the order posts, comments, reactions. Each pass commits on
// its own; the first failure stops the run and the counts of the passes that
// did commit are returned with the error.
func (r *ReaperImpl) Reap(ctx context.Context, now time.Time) (domain.ReapResult, error) {
	var res domain.ReapResult

	if !r.Config.StoreConfigured() {
		r.Logger.Error("Missing store configuration")
		return res, errors.WrapWithCode(errors.ErrNotConfigured, errors.CodeNotConfigured, "Server configuration error")
	}

	r.Logger.Info("Starting cleanup of expired content", "cutoff", now.UTC().Format(time.RFC3339))

	passes := []pass{
		{table: "posts", delete: r.PostRepo.DeleteExpired, count: &res.Posts},
		{table: "comments", delete: r.CommentRepo.DeleteExpired, count: &res.Comments},
		{table: "reactions", delete: r.ReactionRepo.DeleteExpired, count: &res.Reactions},
	}

	for _, p := range passes {
		n, err := p.delete(ctx, now)
		if err != nil {
			r.Logger.Error("Error deleting expired rows",
				"table", p.table,
				"error", err,
				"posts", res.Posts,
				"comments", res.Comments,
				"reactions", res.Reactions,
			)
			return res, errors.StoreWriteFailed(err, fmt.Sprintf("failed to delete expired %s", p.table))
		}
		*p.count = n
	}

	r.Logger.Info("Cleanup completed",
		"posts", res.Posts,
		"comments", res.Comments,
		"reactions", res.Reactions,
	)
	return res, nil
}
