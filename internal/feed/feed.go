package feed

import (
	"context"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go
type Client interface {
	Universities(ctx context.Context) ([]domain.University, error)

	// Latest returns the newest live posts across every campus.
	Latest(ctx context.Context, limit int) ([]*domain.Post, error)
	ByUniversity(ctx context.Context, universityID string, limit int) ([]*domain.Post, error)

	// Open returns a live post and counts the view.
	Open(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	Comments(ctx context.Context, postID uuid.UUID, limit int) ([]*domain.Comment, error)

	// Like records a like reaction. applied is false when the post no longer
	// exists; that case is not an error.
	Like(ctx context.Context, postID uuid.UUID) (applied bool, err error)
}
