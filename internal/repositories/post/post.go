package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
)

var (
	ErrNotFound          = errors.New("post not found")
	ErrUnknownUniversity = errors.New("post references unknown university")
)

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts the post. created is false when a row with the same id
	// already exists, which makes replays of one submission a no-op.
	Create(ctx context.Context, post domain.Post) (created bool, err error)

	// GetByID returns a post with its university joined
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetLatest returns the newest non-expired posts across all universities
	GetLatest(ctx context.Context, now time.Time, limit int) ([]*domain.Post, error)

	// GetLatestByUniversity returns the newest non-expired posts for one university
	GetLatestByUniversity(ctx context.Context, universityID string, now time.Time, limit int) ([]*domain.Post, error)

	// IncrementViews bumps views_count, ErrNotFound if the row is gone
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes posts with expires_at < now; comments and
	// reactions referencing them go with the cascade
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
