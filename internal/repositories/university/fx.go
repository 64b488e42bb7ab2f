package university

import (
	"github.com/whispr-campus/whispr/internal/cache"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Module("university_repository",
	fx.Provide(
		NewPgxRepository,
		newRepository,
	),
)

func newRepository(pg *PgxRepository, c *cache.RedisCache, cfg *config.Config, log logger.Logger) Repository {
	if c == nil {
		return pg
	}
	return NewCachedRepository(pg, c, cfg.Redis.CacheTTL, log)
}
