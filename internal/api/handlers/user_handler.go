package handlers

import (
	"errors"
	"time"

	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	res, err := h.userService.Register(c.Context(), *req, c.Cookies(domain.SessionCookieName))
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	if res.NewSession {
		c.Cookie(&fiber.Cookie{
			Name:    domain.SessionCookieName,
			Value:   res.SessionID.String(),
			Path:    domain.SessionCookiePath,
			MaxAge:  int(domain.SessionCookieMaxAge / time.Second),
			Expires: time.Now().Add(domain.SessionCookieMaxAge),
		})
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRegisterUser)
}
