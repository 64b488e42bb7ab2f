package domain

import (
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 500

// Comment expiry runs on its own clock, independent of the parent post.
// Deleting the post still removes it through the foreign key cascade.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Content   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewComment(id, postID uuid.UUID, content string, now time.Time) Comment {
	return Comment{
		ID:        id,
		PostID:    postID,
		Content:   content,
		CreatedAt: now,
		ExpiresAt: ExpiresAt(now),
	}
}
