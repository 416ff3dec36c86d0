package middleware

import (
	"errors"

	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(sessionService session.SessionService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Cookie",
	})
}

// SessionMiddleware gates every meal route: it reads the sessionId cookie,
// resolves it to the owning user and stores the user id in the request
// locals. Requests without a resolvable session never reach a handler.
func (m *middleware) SessionMiddleware(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookieName)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, domain.ErrSessionNotFound)
		}

		user, err := sessionService.Resolve(c.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrSessionInvalid) || errors.Is(err, domain.ErrSessionNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSessionInvalid, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}

		c.Locals("user_id", user.ID.String())
		return c.Next()
	}
}
