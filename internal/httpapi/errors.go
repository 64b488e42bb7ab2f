package httpapi

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/whispr-campus/whispr/pkg/errors"
)

// handleError renders errors returned by /api/v1 handlers.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	status := errors.HTTPStatus(err)
	message := errors.GetMessage(err)
	if status >= fiber.StatusInternalServerError && errors.GetCode(err) == "" {
		s.log.Error("Unhandled error", "path", c.Path(), "error", err)
		message = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  errors.CodeOf(err),
	})
}

func (s *Server) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.InvalidInput(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.InvalidInput(strings.Join(msgs, "; "))
}
