package feedimpl

import (
	"github.com/jonboulle/clockwork"
	"github.com/whispr-campus/whispr/internal/feed"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	"github.com/whispr-campus/whispr/internal/repositories/university"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	UniversityRepo university.Repository
	PostRepo       post.Repository
	CommentRepo    comment.Repository
	ReactionRepo   reaction.Repository
	Clock          clockwork.Clock
	Logger         logger.Logger
}

type FeedImpl struct {
	UniversityRepo university.Repository
	PostRepo       post.Repository
	CommentRepo    comment.Repository
	ReactionRepo   reaction.Repository
	Clock          clockwork.Clock
	Logger         logger.Logger
}

func New(opts Opts) *FeedImpl {
	return &FeedImpl{
		UniversityRepo: opts.UniversityRepo,
		PostRepo:       opts.PostRepo,
		CommentRepo:    opts.CommentRepo,
		ReactionRepo:   opts.ReactionRepo,
		Clock:          opts.Clock,
		Logger:         opts.Logger.WithComponent("Feed"),
	}
}

var _ feed.Client = (*FeedImpl)(nil)
