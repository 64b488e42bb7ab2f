package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPostLength is counted in runes after trimming.
const MaxPostLength = 280

type Post struct {
	ID            uuid.UUID
	Content       string
	ImageURL      *string
	VideoURL      *string
	UniversityID  string
	Color         Color
	LikesCount    int
	CommentsCount int
	ViewsCount    int
	CreatedAt     time.Time
	ExpiresAt     time.Time

	// Joined from universities on feed reads; empty on insert.
	UniversityName      string
	UniversityShortName string
}

// NewPost builds a post ready for insert: zero counters and a fresh expiry
// window starting at now.
func NewPost(id uuid.UUID, content, universityID string, color Color, now time.Time) Post {
	return Post{
		ID:           id,
		Content:      content,
		UniversityID: universityID,
		Color:        color,
		CreatedAt:    now,
		ExpiresAt:    ExpiresAt(now),
	}
}

// AttachMedia sets the image or video reference depending on content type.
func (p *Post) AttachMedia(url, contentType string) {
	if IsVideo(contentType) {
		p.VideoURL = &url
		return
	}
	p.ImageURL = &url
}
