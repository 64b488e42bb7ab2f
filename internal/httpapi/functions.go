package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/pkg/errors"
)

// Handlers under /functions/v1 keep the response bodies the web client
// already parses, so they write their own errors instead of going through
// handleError.

type moderateRequest struct {
	Content string             `json:"content"`
	Type    domain.ContentKind `json:"type"`
}

type cleanupResponse struct {
	Success   bool              `json:"success"`
	Deleted   domain.ReapResult `json:"deleted"`
	Timestamp string            `json:"timestamp"`
}

func (s *Server) moderateContent(c *fiber.Ctx) error {
	var req moderateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Type == "" {
		req.Type = domain.ContentKindPost
	}

	verdict, err := s.deps.Moderation.Moderate(c.UserContext(), req.Content, req.Type)
	switch {
	case err == nil:
		return c.JSON(verdict)
	case errors.Is(err, errors.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errors.GetMessage(err)})
	case errors.Is(err, errors.ErrNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OpenAI API key not configured"})
	case errors.Is(err, errors.ErrModerationUnavailable):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Content moderation failed"})
	default:
		s.log.Error("Error in moderate-content", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error during content moderation"})
	}
}

func (s *Server) cleanupExpired(c *fiber.Ctx) error {
	now := s.deps.Clock.Now()

	res, err := s.deps.Reaper.Reap(c.UserContext(), now)
	if err != nil {
		if errors.Is(err, errors.ErrNotConfigured) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server configuration error"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to cleanup expired content",
			"details": err.Error(),
		})
	}

	return c.JSON(cleanupResponse{
		Success:   true,
		Deleted:   res,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
	})
}
