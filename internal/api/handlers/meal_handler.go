package handlers

import (
	"errors"
	"fmt"

	"daily-diet-api/domain"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealByID(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GetMealSummary(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	req := new(domain.CreateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	if err := h.mealService.CreateMeal(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	meals, err := h.mealService.GetMeals(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealByID(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	res, err := h.mealService.GetMealByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMealNotFound, err)
		case errors.Is(err, domain.ErrMealNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMealNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeal)
}

func (h *mealHandler) UpdateMeal(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	req := new(domain.UpdateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	if err := h.mealService.UpdateMeal(c.Context(), c.Params("id"), *req, userID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) || errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusAccepted, domain.MessageSuccessUpdateMeal)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	mealID := c.Params("id")
	if err := h.mealService.DeleteMeal(c.Context(), mealID, userID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) || errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": mealID}, fiber.StatusAccepted, fmt.Sprintf("meal deleted id: %s", mealID))
}

func (h *mealHandler) GetMealSummary(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	summary, err := h.mealService.GetMealSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSummary, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"dados": summary})
}

// ownerID reads the identity stashed by the session middleware.
func ownerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return uuid.Parse(raw)
}
