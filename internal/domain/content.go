package domain

import (
	"strings"
	"time"
)

// ContentTTL is how long posts, comments and reactions live.
const ContentTTL = 7 * 24 * time.Hour

// ExpiresAt is fixed at creation and never recomputed.
func ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.Add(ContentTTL)
}

// Expired reports whether a row with this expiry is due for reaping at now.
func Expired(expiresAt, now time.Time) bool {
	return expiresAt.Before(now)
}

type ContentKind string

const (
	ContentKindPost    ContentKind = "post"
	ContentKindComment ContentKind = "comment"
)

func (k ContentKind) Valid() bool {
	return k == ContentKindPost || k == ContentKindComment
}

// MaxLength returns the rune limit for the kind.
func (k ContentKind) MaxLength() int {
	if k == ContentKindComment {
		return MaxCommentLength
	}
	return MaxPostLength
}

func IsVideo(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "video/")
}
