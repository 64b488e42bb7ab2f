package reaction

import (
	"context"
	"errors"
	"time"

	"github.com/whispr-campus/whispr/internal/domain"
)

var ErrPostNotFound = errors.New("reaction references a missing or expired post")

//go:generate go run go.uber.org/mock/mockgen -source=reaction.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts the reaction and bumps likes_count in one transaction
	Create(ctx context.Context, reaction domain.Reaction) error

	// DeleteExpired removes reactions with expires_at < now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
