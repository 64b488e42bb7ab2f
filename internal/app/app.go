package app

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/whispr-campus/whispr/internal/cache"
	"github.com/whispr-campus/whispr/internal/db"
	"github.com/whispr-campus/whispr/internal/feed"
	"github.com/whispr-campus/whispr/internal/feed/feedimpl"
	"github.com/whispr-campus/whispr/internal/httpapi"
	"github.com/whispr-campus/whispr/internal/media"
	"github.com/whispr-campus/whispr/internal/media/mediaimpl"
	"github.com/whispr-campus/whispr/internal/moderation"
	"github.com/whispr-campus/whispr/internal/moderation/moderationimpl"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/internal/publisher/publisherimpl"
	"github.com/whispr-campus/whispr/internal/reaper"
	"github.com/whispr-campus/whispr/internal/reaper/reaperimpl"
	repositories "github.com/whispr-campus/whispr/internal/repositories/fx"
	"github.com/whispr-campus/whispr/internal/telegram"
	"github.com/whispr-campus/whispr/internal/telegram/telegramimpl"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"github.com/whispr-campus/whispr/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		cache.New,
		clockwork.NewRealClock,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			moderationimpl.New,
			fx.As(new(moderation.Client)),
		),
		fx.Annotate(
			mediaimpl.New,
			fx.As(new(media.Uploader)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
		fx.Annotate(
			reaperimpl.New,
			fx.As(new(reaper.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
		httpapi.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate brings the schema up to date before anything else starts.
func migrate(log logger.Logger, cfg *config.Config) error {
	if !cfg.StoreConfigured() {
		log.Warn("Store not configured, skipping migrations")
		return nil
	}

	pg, err := db.NewConnect(cfg)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Up(context.Background()); err != nil {
		return err
	}

	version, err := pg.Version(context.Background())
	if err != nil {
		return err
	}
	log.Info("Database migrated", "version", version)
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, tgClient telegram.Client, rClient reaper.Client, _ *httpapi.Server) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := rClient.ScheduleReap(ctx); err != nil {
				log.Error("Schedule reaper error", "error", err)
				tgClient.SendAlert("Schedule reaper error", err.Error())
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
