package reaperimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/pkg/errors"
	"github.com/whispr-campus/whispr/pkg/formatter"
	"github.com/whispr-campus/whispr/pkg/retry"
)

const defaultReapTimeout = 5 * time.Minute

// ScheduleReap registers the reaper on the configured cron expression and
// shuts the scheduler down once ctx is done.
func (r *ReaperImpl) ScheduleReap(ctx context.Context) error {
	loc, err := time.LoadLocation(r.Config.App.Timezone)
	if err != nil {
		loc = time.UTC
		r.Logger.Warn("Failed to load timezone, using UTC", "timezone", r.Config.App.Timezone, "error", err)
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithClock(r.Clock),
	)
	if err != nil {
		return fmt.Errorf("failed to create reaper scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(r.Config.Reaper.Cron, false),
		gocron.NewTask(func() { r.runScheduled(ctx) }),
		gocron.WithName("expiry-reaper"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule reaper: %w", err)
	}

	scheduler.Start()
	r.Logger.Info("Expiry reaper scheduled", "cron", r.Config.Reaper.Cron, "timezone", loc.String())

	go func() {
		<-ctx.Done()
		r.Logger.Info("Stopping reaper scheduler")
		if err := scheduler.Shutdown(); err != nil {
			r.Logger.Error("Failed to shut down reaper scheduler", "error", err)
		}
	}()

	return nil
}

// runScheduled retries the whole reap with backoff; reaping is idempotent so
// a retry only picks up what the failed attempt left behind.
func (r *ReaperImpl) runScheduled(ctx context.Context) {
	if ctx.Err() != nil {
		r.Logger.Info("Context cancelled, skipping scheduled reap")
		return
	}

	timeout := r.Config.Reaper.Timeout
	if timeout <= 0 {
		timeout = defaultReapTimeout
	}
	reapCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var total domain.ReapResult
	err := retry.Do(reapCtx, r.Logger, "reap_expired", func() error {
		res, err := r.Reap(reapCtx, r.Clock.Now())
		total.Posts += res.Posts
		total.Comments += res.Comments
		total.Reactions += res.Reactions
		if errors.Is(err, errors.ErrNotConfigured) {
			return retry.Permanent(err)
		}
		return err
	}, r.retryConfig)

	if err != nil {
		r.Logger.Error("Scheduled reap failed", "error", err)
		r.Telegram.SendAlert("Expiry reaper failed", fmt.Sprintf(
			"%v\ndeleted before failure: %s",
			err,
			formatter.FormatCounts(
				formatter.Count{Label: "posts", N: total.Posts},
				formatter.Count{Label: "comments", N: total.Comments},
				formatter.Count{Label: "reactions", N: total.Reactions},
			),
		))
		return
	}

	r.Logger.Info("Scheduled reap finished", "deleted", total.Total())
}
