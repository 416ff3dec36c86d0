package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMeal = "meal created successfully"
	MessageSuccessUpdateMeal = "meal updated successfully"
	MessageSuccessGetMeals   = "meals retrieved successfully"
	MessageSuccessGetMeal    = "meal retrieved successfully"
	MessageSuccessGetSummary = "meal summary retrieved successfully"

	MessageFailedCreateMeal = "failed to create meal"
	MessageFailedUpdateMeal = "failed to update meal"
	MessageFailedDeleteMeal = "failed to delete meal"
	MessageFailedGetMeals   = "failed to retrieve meals"
	MessageFailedGetSummary = "failed to retrieve meal summary"

	MessageMealNotFound = "meal not found"

	// Covers both a missing row and a row owned by someone else, so a
	// caller cannot probe for other users' meal ids.
	ErrMealNotFound = errors.New("meal not found or unauthorized")
)

type (
	CreateMealRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
		IsOnDiet    bool   `json:"isOnDiet"`
	}

	UpdateMealRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
		IsOnDiet    *bool  `json:"isOnDiet" validate:"required"`
	}

	MealResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
		IsOnDiet    bool      `json:"isOnDiet"`
	}

	MealSummaryResponse struct {
		CountAllMeals   int64          `json:"countAllMeals"`
		DietMeals       int64          `json:"dietMeals"`
		BestOnDietMeals []MealResponse `json:"bestonDietMeals"`
		NonDietMeals    int64          `json:"nonDietMeals"`
	}
)
