package publisher

import (
	"context"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/media"
)

// State is the furthest step a publication reached.
type State string

const (
	StatePending       State = "pending"
	StateModerated     State = "moderated"
	StateMediaResolved State = "media_resolved"
	StatePersisted     State = "persisted"
)

// Submission is one post or comment awaiting publication. UniversityID is
// required for posts, PostID for comments.
type Submission struct {
	Kind         domain.ContentKind
	Content      string
	Media        *media.File
	UniversityID string
	PostID       uuid.UUID

	// IdempotencyKey becomes the row id when set, so a retried submission
	// resolves to the row already written.
	IdempotencyKey uuid.UUID
}

type Result struct {
	ID       uuid.UUID
	State    State
	Verdict  *domain.Verdict
	MediaURL string
	Warnings []error
	// Replayed is true when the idempotency key matched an existing row.
	Replayed bool
}

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock.go
type Client interface {
	Publish(ctx context.Context, sub Submission) (*Result, error)
}
