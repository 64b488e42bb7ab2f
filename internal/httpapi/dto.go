package httpapi

import (
	"time"

	"github.com/samber/lo"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/pkg/errors"
)

type createPostRequest struct {
	Content      string `json:"content" form:"content" validate:"required"`
	UniversityID string `json:"university_id" form:"university_id" validate:"required,max=64"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type createReactionRequest struct {
	Type string `json:"reaction_type" validate:"omitempty,oneof=like"`
}

type postResponse struct {
	ID                  string       `json:"id"`
	Content             string       `json:"content"`
	ImageURL            *string      `json:"image_url"`
	VideoURL            *string      `json:"video_url"`
	UniversityID        string       `json:"university_id"`
	UniversityName      string       `json:"university_name,omitempty"`
	UniversityShortName string       `json:"university_short_name,omitempty"`
	Color               domain.Color `json:"color"`
	LikesCount          int          `json:"likes_count"`
	CommentsCount       int          `json:"comments_count"`
	ViewsCount          int          `json:"views_count"`
	CreatedAt           time.Time    `json:"created_at"`
	ExpiresAt           time.Time    `json:"expires_at"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type publishResponse struct {
	ID       string          `json:"id"`
	State    publisher.State `json:"state"`
	MediaURL string          `json:"media_url,omitempty"`
	Replayed bool            `json:"replayed"`
	Warnings []string        `json:"warnings"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:                  p.ID.String(),
		Content:             p.Content,
		ImageURL:            p.ImageURL,
		VideoURL:            p.VideoURL,
		UniversityID:        p.UniversityID,
		UniversityName:      p.UniversityName,
		UniversityShortName: p.UniversityShortName,
		Color:               p.Color,
		LikesCount:          p.LikesCount,
		CommentsCount:       p.CommentsCount,
		ViewsCount:          p.ViewsCount,
		CreatedAt:           p.CreatedAt,
		ExpiresAt:           p.ExpiresAt,
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	return lo.Map(posts, func(p *domain.Post, _ int) postResponse {
		return toPostResponse(p)
	})
}

func toCommentResponses(comments []*domain.Comment) []commentResponse {
	return lo.Map(comments, func(c *domain.Comment, _ int) commentResponse {
		return commentResponse{
			ID:        c.ID.String(),
			PostID:    c.PostID.String(),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			ExpiresAt: c.ExpiresAt,
		}
	})
}

func toPublishResponse(res *publisher.Result) publishResponse {
	return publishResponse{
		ID:       res.ID.String(),
		State:    res.State,
		MediaURL: res.MediaURL,
		Replayed: res.Replayed,
		Warnings: lo.Map(res.Warnings, func(w error, _ int) string {
			return errors.GetMessage(w)
		}),
	}
}
