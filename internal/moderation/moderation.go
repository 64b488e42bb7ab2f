package moderation

import (
	"context"

	"github.com/whispr-campus/whispr/internal/domain"
)

//go:generate mockgen -source=moderation.go -destination=mocks/mock.go

// Client classifies user text before it is allowed into the store.
// Implementations fail closed: any error means the content must not be
// persisted.
type Client interface {
	Moderate(ctx context.Context, content string, kind domain.ContentKind) (*domain.Verdict, error)
}
