package publisherimpl

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/internal/repositories/comment"
	"github.com/whispr-campus/whispr/internal/repositories/post"
	"github.com/whispr-campus/whispr/pkg/errors"
	"github.com/whispr-campus/whispr/pkg/logger"
)

var errConflict = errors.IdempotencyConflict("Idempotency-Key was already used for a different submission")

// Publish runs validate, moderate, resolve media and persist, in that order.
// Each step gates the next; nothing is written unless the verdict approved.
func (p *PublisherImpl) Publish(ctx context.Context, sub publisher.Submission) (*publisher.Result, error) {
	content, err := validate(sub)
	if err != nil {
		return nil, err
	}

	res := &publisher.Result{ID: sub.IdempotencyKey, State: publisher.StatePending}
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	log := p.Logger.With("kind", sub.Kind, "id", res.ID)

	verdict, err := p.Moderation.Moderate(ctx, content, sub.Kind)
	if err != nil {
		log.Warn("Moderation failed, nothing written", "error", err)
		if errors.Is(err, errors.ErrModerationUnavailable) || errors.Is(err, errors.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.ModerationUnavailable(err)
	}
	if !verdict.Approved {
		log.Info("Content rejected", "categories", verdict.FlaggedCategories())
		return nil, errors.ContentRejected(verdict.Message)
	}
	res.Verdict = verdict
	p.advance(log, res, publisher.StateModerated)

	switch sub.Kind {
	case domain.ContentKindPost:
		return p.publishPost(ctx, log, sub, content, res)
	default:
		return p.publishComment(ctx, log, sub, content, res)
	}
}

func (p *PublisherImpl) publishPost(ctx context.Context, log logger.Logger, sub publisher.Submission, content string, res *publisher.Result) (*publisher.Result, error) {
	now := p.Clock.Now().UTC()
	row := domain.NewPost(res.ID, content, sub.UniversityID, domain.RandomColor(), now)

	if sub.Media != nil {
		url, err := p.Uploader.Upload(ctx, *sub.Media)
		if err != nil {
			log.Warn("Media upload failed, publishing text-only", "error", err)
			res.Warnings = append(res.Warnings, errors.MediaUploadFailed(err))
		} else {
			row.AttachMedia(url, sub.Media.ContentType)
			res.MediaURL = url
		}
	}
	p.advance(log, res, publisher.StateMediaResolved)

	created, err := p.PostRepo.Create(ctx, row)
	if err != nil {
		if errors.Is(err, post.ErrUnknownUniversity) {
			return nil, errors.InvalidInput(fmt.Sprintf("unknown university %q", sub.UniversityID))
		}
		log.Error("Failed to persist post", "error", err)
		return nil, errors.StoreWriteFailed(err, "failed to save post")
	}

	if !created {
		existing, err := p.PostRepo.GetByID(ctx, res.ID)
		if err != nil {
			log.Error("Failed to load post for replayed key", "error", err)
			return nil, errors.StoreWriteFailed(err, "failed to save post")
		}
		if existing.Content != content || existing.UniversityID != sub.UniversityID {
			log.Warn("Idempotency key reused for a different post")
			return nil, errConflict
		}
		res.Replayed = true
		res.MediaURL = mediaURL(existing)
		log.Info("Idempotency key matched an existing post")
	}

	p.advance(log, res, publisher.StatePersisted)
	return res, nil
}

func (p *PublisherImpl) publishComment(ctx context.Context, log logger.Logger, sub publisher.Submission, content string, res *publisher.Result) (*publisher.Result, error) {
	p.advance(log, res, publisher.StateMediaResolved)

	row := domain.NewComment(res.ID, sub.PostID, content, p.Clock.Now().UTC())
	created, err := p.CommentRepo.Create(ctx, row)
	if err != nil {
		if errors.Is(err, comment.ErrPostNotFound) {
			return nil, errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "post not found")
		}
		log.Error("Failed to persist comment", "error", err)
		return nil, errors.StoreWriteFailed(err, "failed to save comment")
	}

	if !created {
		existing, err := p.CommentRepo.GetByID(ctx, res.ID)
		if err != nil {
			log.Error("Failed to load comment for replayed key", "error", err)
			return nil, errors.StoreWriteFailed(err, "failed to save comment")
		}
		if existing.Content != content || existing.PostID != sub.PostID {
			log.Warn("Idempotency key reused for a different comment")
			return nil, errConflict
		}
		res.Replayed = true
		log.Info("Idempotency key matched an existing comment")
	}

	p.advance(log, res, publisher.StatePersisted)
	return res, nil
}

func (p *PublisherImpl) advance(log logger.Logger, res *publisher.Result, to publisher.State) {
	log.Debug("Publication state changed", "from", res.State, "to", to)
	res.State = to
}

func validate(sub publisher.Submission) (string, error) {
	if !sub.Kind.Valid() {
		return "", errors.InvalidInput(fmt.Sprintf("unknown content type %q", sub.Kind))
	}

	content := strings.TrimSpace(sub.Content)
	if content == "" {
		return "", errors.InvalidInput("Content is required")
	}
	if n := utf8.RuneCountInString(content); n > sub.Kind.MaxLength() {
		return "", errors.InvalidInput(fmt.Sprintf("content is %d characters, limit is %d", n, sub.Kind.MaxLength()))
	}

	switch sub.Kind {
	case domain.ContentKindPost:
		if strings.TrimSpace(sub.UniversityID) == "" {
			return "", errors.InvalidInput("university is required")
		}
	case domain.ContentKindComment:
		if sub.PostID == uuid.Nil {
			return "", errors.InvalidInput("post is required")
		}
		if sub.Media != nil {
			return "", errors.InvalidInput("comments cannot carry media")
		}
	}

	return content, nil
}

func mediaURL(p *domain.Post) string {
	switch {
	case p.VideoURL != nil:
		return *p.VideoURL
	case p.ImageURL != nil:
		return *p.ImageURL
	default:
		return ""
	}
}
