package httpapi

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/media"
	"github.com/whispr-campus/whispr/internal/publisher"
	"github.com/whispr-campus/whispr/pkg/errors"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	maxMediaSize         = 10 << 20
)

func (s *Server) listUniversities(c *fiber.Ctx) error {
	universities, err := s.deps.Feed.Universities(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": universities})
}

func (s *Server) listUniversityPosts(c *fiber.Ctx) error {
	posts, err := s.deps.Feed.ByUniversity(c.UserContext(), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toPostResponses(posts)})
}

func (s *Server) listPosts(c *fiber.Ctx) error {
	posts, err := s.deps.Feed.Latest(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toPostResponses(posts)})
}

func (s *Server) openPost(c *fiber.Ctx) error {
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	p, err := s.deps.Feed.Open(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toPostResponse(p)})
}

func (s *Server) listComments(c *fiber.Ctx) error {
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	comments, err := s.deps.Feed.Comments(c.UserContext(), id, c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": toCommentResponses(comments)})
}

// createPost accepts JSON, or multipart with an optional "image" file.
func (s *Server) createPost(c *fiber.Ctx) error {
	key, err := idempotencyKey(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput("invalid request body")
	}
	if err := s.validateStruct(req); err != nil {
		return err
	}

	file, err := mediaFile(c)
	if err != nil {
		return err
	}

	res, err := s.deps.Publisher.Publish(c.UserContext(), publisher.Submission{
		Kind:           domain.ContentKindPost,
		Content:        req.Content,
		Media:          file,
		UniversityID:   req.UniversityID,
		IdempotencyKey: key,
	})
	if err != nil {
		return err
	}
	return c.Status(publishStatus(res)).JSON(toPublishResponse(res))
}

func (s *Server) createComment(c *fiber.Ctx) error {
	postID, err := postIDParam(c)
	if err != nil {
		return err
	}
	key, err := idempotencyKey(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput("invalid request body")
	}
	if err := s.validateStruct(req); err != nil {
		return err
	}

	res, err := s.deps.Publisher.Publish(c.UserContext(), publisher.Submission{
		Kind:           domain.ContentKindComment,
		Content:        req.Content,
		PostID:         postID,
		IdempotencyKey: key,
	})
	if err != nil {
		return err
	}
	return c.Status(publishStatus(res)).JSON(toPublishResponse(res))
}

func (s *Server) createReaction(c *fiber.Ctx) error {
	postID, err := postIDParam(c)
	if err != nil {
		return err
	}

	var req createReactionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errors.InvalidInput("invalid request body")
		}
	}
	if err := s.validateStruct(req); err != nil {
		return err
	}

	applied, err := s.deps.Feed.Like(c.UserContext(), postID)
	if err != nil {
		return err
	}

	status := fiber.StatusCreated
	if !applied {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"applied": applied})
}

func publishStatus(res *publisher.Result) int {
	if res.Replayed {
		return fiber.StatusOK
	}
	return fiber.StatusCreated
}

func postIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.InvalidInput("invalid post id")
	}
	return id, nil
}

func idempotencyKey(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Get(headerIdempotencyKey))
	if raw == "" {
		return uuid.Nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.InvalidInput("Idempotency-Key must be a UUID")
	}
	return key, nil
}

func mediaFile(c *fiber.Ctx) (*media.File, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}

	fh, err := c.FormFile("image")
	if err != nil {
		// no file part
		return nil, nil
	}
	if fh.Size > maxMediaSize {
		return nil, errors.InvalidInput("media file is larger than 10MB")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.InvalidInput("media file could not be read")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxMediaSize+1))
	if err != nil {
		return nil, errors.InvalidInput("media file could not be read")
	}

	return &media.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
