package comment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
)

var (
	ErrNotFound     = errors.New("comment not found")
	ErrPostNotFound = errors.New("comment references a missing or expired post")
)

//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts the comment and bumps the parent post's comments_count in
	// one transaction. created is false when the id already exists.
	Create(ctx context.Context, comment domain.Comment) (created bool, err error)

	// GetByID returns a single comment regardless of expiry
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// GetByPostID returns non-expired comments newest first
	GetByPostID(ctx context.Context, postID uuid.UUID, now time.Time, limit int) ([]*domain.Comment, error)

	// DeleteExpired removes comments with expires_at < now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
