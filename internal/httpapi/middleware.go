package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
	}

	s.log.Debug("Request handled",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"latency", time.Since(start).String(),
		"ip", c.IP(),
	)
	return err
}

// rateLimit applies the per-IP token bucket to write routes.
func (s *Server) rateLimit(c *fiber.Ctx) error {
	if s.deps.Limiter == nil || s.deps.Limiter.Allow(c.IP()) {
		return c.Next()
	}

	s.log.Warn("Rate limit exceeded", "ip", c.IP(), "path", c.Path())
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": "Too many requests. Please try again later.",
		"code":  "RATE_LIMITED",
	})
}
