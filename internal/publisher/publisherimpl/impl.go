package publisherimpl

import (
	"github.com/jonboulle/clockwork"
	"github.com/whispr-campus/whispr/internal/media"
	"github.com/whispr-campus/whispr/internal/moderation"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Moderation  moderation.Client
	Uploader    media.Uploader
	PostRepo    post.Repository
	CommentRepo comment.Repository
	Clock       clockwork.Clock
	Logger      logger.Logger
}

type PublisherImpl struct {
	Moderation  moderation.Client
	Uploader    media.Uploader
	PostRepo    post.Repository
	CommentRepo comment.Repository
	Clock       clockwork.Clock
	Logger      logger.Logger
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		Moderation:  opts.Moderation,
		Uploader:    opts.Uploader,
		PostRepo:    opts.PostRepo,
		CommentRepo: opts.CommentRepo,
		Clock:       opts.Clock,
		Logger:      opts.Logger.WithComponent("Publisher"),
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)
