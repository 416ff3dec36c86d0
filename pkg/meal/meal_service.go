package meal

import (
	"context"
	"errors"

	"daily-diet-api/domain"
	"daily-diet-api/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID uuid.UUID) error
		GetMeals(ctx context.Context, userID uuid.UUID) ([]domain.MealResponse, error)
		GetMealByID(ctx context.Context, mealID string, userID uuid.UUID) (domain.MealResponse, error)
		UpdateMeal(ctx context.Context, mealID string, req domain.UpdateMealRequest, userID uuid.UUID) error
		DeleteMeal(ctx context.Context, mealID string, userID uuid.UUID) error
		GetMealSummary(ctx context.Context, userID uuid.UUID) (domain.MealSummaryResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{mealRepository: mealRepository}
}

func (s *mealService) CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID uuid.UUID) error {
	meal := &entities.Meal{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    req.IsOnDiet,
	}
	return s.mealRepository.CreateMeal(ctx, meal)
}

func (s *mealService) GetMeals(ctx context.Context, userID uuid.UUID) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetMeals(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, toMealResponse(m))
	}
	return response, nil
}

func (s *mealService) GetMealByID(ctx context.Context, mealID string, userID uuid.UUID) (domain.MealResponse, error) {
	id, err := uuid.Parse(mealID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	meal, err := s.mealRepository.GetMealByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, err
	}
	return toMealResponse(*meal), nil
}

// UpdateMeal replaces name, description and the diet flag in full. The guard
// on id+owner makes a miss indistinguishable from a meal owned by someone
// else.
func (s *mealService) UpdateMeal(ctx context.Context, mealID string, req domain.UpdateMealRequest, userID uuid.UUID) error {
	id, err := uuid.Parse(mealID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.mealRepository.UpdateMeal(ctx, &entities.Meal{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsOnDiet:    *req.IsOnDiet,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (s *mealService) DeleteMeal(ctx context.Context, mealID string, userID uuid.UUID) error {
	id, err := uuid.Parse(mealID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.mealRepository.DeleteMeal(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (s *mealService) GetMealSummary(ctx context.Context, userID uuid.UUID) (domain.MealSummaryResponse, error) {
	onDiet := true
	offDiet := false

	total, err := s.mealRepository.CountMeals(ctx, userID, nil)
	if err != nil {
		return domain.MealSummaryResponse{}, err
	}

	dietCount, err := s.mealRepository.CountMeals(ctx, userID, &onDiet)
	if err != nil {
		return domain.MealSummaryResponse{}, err
	}

	nonDietCount, err := s.mealRepository.CountMeals(ctx, userID, &offDiet)
	if err != nil {
		return domain.MealSummaryResponse{}, err
	}

	dietMeals, err := s.mealRepository.GetMeals(ctx, userID, &onDiet)
	if err != nil {
		return domain.MealSummaryResponse{}, err
	}

	bestOnDiet := make([]domain.MealResponse, 0, len(dietMeals))
	for _, m := range dietMeals {
		bestOnDiet = append(bestOnDiet, toMealResponse(m))
	}

	return domain.MealSummaryResponse{
		CountAllMeals:   total,
		DietMeals:       dietCount,
		BestOnDietMeals: bestOnDiet,
		NonDietMeals:    nonDietCount,
	}, nil
}

func toMealResponse(m entities.Meal) domain.MealResponse {
	return domain.MealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		IsOnDiet:    m.IsOnDiet,
	}
}
