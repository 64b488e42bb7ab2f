package httpapi

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jonboulle/clockwork"
	"github.com/whispr-campus/whispr/internal/feed"
	"github.com/whispr-campus/whispr/internal/moderation"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/internal/ratelimit"
	"github.com/whispr-campus/whispr/internal/reaper"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

const (
	allowHeaders = "authorization, x-client-info, apikey, content-type, idempotency-key"
	bodyLimit    = 12 << 20
	sweepEvery   = 5 * time.Minute
)

// Deps are the services the handlers call into.
type Deps struct {
	Moderation moderation.Client
	Publisher  publisher.Client
	Feed       feed.Client
	Reaper     reaper.Client
	Limiter    ratelimit.Limiter
	Clock      clockwork.Clock
	Logger     logger.Logger
}

type Opts struct {
	fx.In

	LC         fx.Lifecycle
	Config     *config.Config
	Logger     logger.Logger
	Clock      clockwork.Clock
	Moderation moderation.Client
	Publisher  publisher.Client
	Feed       feed.Client
	Reaper     reaper.Client
}

type Server struct {
	app      *fiber.App
	deps     Deps
	validate *validator.Validate
	log      logger.Logger
}

// New builds the server and ties its listener to the fx lifecycle.
func New(opts Opts) *Server {
	limiter := ratelimit.NewInMemoryLimiter(
		opts.Config.RateLimit.Requests,
		opts.Config.RateLimit.Per,
		opts.Config.RateLimit.Burst,
	)

	s := NewServer(Deps{
		Moderation: opts.Moderation,
		Publisher:  opts.Publisher,
		Feed:       opts.Feed,
		Reaper:     opts.Reaper,
		Limiter:    limiter,
		Clock:      opts.Clock,
		Logger:     opts.Logger,
	})

	addr := fmt.Sprintf(":%d", opts.Config.App.Port)
	stopSweep := make(chan struct{})

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				s.log.Info("Starting server", "addr", addr)
				if err := s.app.Listen(addr); err != nil {
					s.log.Error("Server stopped", "error", err)
				}
			}()
			go sweepLimiter(limiter, opts.Clock, stopSweep, s.log)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopSweep)
			return s.app.ShutdownWithContext(ctx)
		},
	})

	return s
}

// NewServer builds the fiber app without binding a listener.
func NewServer(deps Deps) *Server {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	s := &Server{
		deps:     deps,
		validate: validate,
		log:      deps.Logger.WithComponent("HTTP"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "whispr",
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: allowHeaders,
	}))
	s.app.Use(s.requestLogger)

	s.routes()
	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.healthz)

	functions := s.app.Group("/functions/v1")
	functions.Post("/moderate-content", s.rateLimit, s.moderateContent)
	functions.Post("/cleanup-expired", s.rateLimit, s.cleanupExpired)
	functions.Get("/cleanup-expired", s.rateLimit, s.cleanupExpired)

	api := s.app.Group("/api/v1")
	api.Get("/universities", s.listUniversities)
	api.Get("/universities/:id/posts", s.listUniversityPosts)
	api.Get("/posts", s.listPosts)
	api.Post("/posts", s.rateLimit, s.createPost)
	api.Get("/posts/:id", s.openPost)
	api.Get("/posts/:id/comments", s.listComments)
	api.Post("/posts/:id/comments", s.rateLimit, s.createComment)
	api.Post("/posts/:id/reactions", s.rateLimit, s.createReaction)
}

func (s *Server) healthz(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
	return c.SendString("ok")
}

func sweepLimiter(l *ratelimit.InMemoryLimiter, clock clockwork.Clock, stop <-chan struct{}, log logger.Logger) {
	ticker := clock.NewTicker(sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			if n := l.Sweep(); n > 0 {
				log.Debug("Swept idle rate limit buckets", "removed", n)
			}
		}
	}
}
