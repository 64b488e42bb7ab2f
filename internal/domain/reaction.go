package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReactionType string

const ReactionLike ReactionType = "like"

func (t ReactionType) Valid() bool {
	return t == ReactionLike
}

type Reaction struct {
	ID           uuid.UUID
	PostID       uuid.UUID
	ReactionType ReactionType
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func NewReaction(id, postID uuid.UUID, reactionType ReactionType, now time.Time) Reaction {
	return Reaction{
		ID:           id,
		PostID:       postID,
		ReactionType: reactionType,
		CreatedAt:    now,
		ExpiresAt:    ExpiresAt(now),
	}
}
