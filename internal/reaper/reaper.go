package reaper

import (
	"context"
	"time"

	"github.com/whispr-campus/whispr/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=reaper.go -destination=mocks/mock.go
type Client interface {
	// Reap deletes every post, comment and reaction whose expires_at is
	// before now. Safe to call repeatedly.
	Reap(ctx context.Context, now time.Time) (domain.ReapResult, error)

	// ScheduleReap runs Reap on the configured cron until ctx is done.
	ScheduleReap(ctx context.Context) error
}
