package reaperimpl

import (
	"github.com/jonboulle/clockwork"
	"github.com/whispr-campus/whispr/internal/reaper"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/internal/repositories/reaction"
	"github.com/whispr-campus/whispr/internal/telegram"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"github.com/whispr-campus/whispr/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostRepo     post.Repository
	CommentRepo  comment.Repository
	ReactionRepo reaction.Repository
	Telegram     telegram.Client
	Clock        clockwork.Clock
	Logger       logger.Logger
	Config       *config.Config
}

type ReaperImpl struct {
	PostRepo     post.Repository
	CommentRepo  comment.Repository
	ReactionRepo reaction.Repository
	Telegram     telegram.Client
	Clock        clockwork.Clock
	Logger       logger.Logger
	Config       *config.Config

	retryConfig retry.Config
}

func New(opts Opts) *ReaperImpl {
	return &ReaperImpl{
		PostRepo:     opts.PostRepo,
		CommentRepo:  opts.CommentRepo,
		ReactionRepo: opts.ReactionRepo,
		Telegram:     opts.Telegram,
		Clock:        opts.Clock,
		Logger:       opts.Logger.WithComponent("Reaper"),
		Config:       opts.Config,
		retryConfig:  retry.DefaultConfig(),
	}
}

var _ reaper.Client = (*ReaperImpl)(nil)
