package meal

import (
	"context"

	"daily-diet-api/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// MealRepository owns meal rows. Every query is filtered by the owning
	// user id; there is no unscoped access path.
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMeals(ctx context.Context, userID uuid.UUID, onDiet *bool) ([]entities.Meal, error)
		GetMealByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) (int64, error)
		DeleteMeal(ctx context.Context, id, userID uuid.UUID) (int64, error)
		CountMeals(ctx context.Context, userID uuid.UUID, onDiet *bool) (int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMeals(ctx context.Context, userID uuid.UUID, onDiet *bool) ([]entities.Meal, error) {
	var meals []entities.Meal

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if onDiet != nil {
		query = query.Where("is_on_diet = ?", *onDiet)
	}

	if err := query.Order("created_at asc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetMealByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal replaces the mutable columns of the row matching id+owner and
// reports how many rows matched. Owner and id are never written.
func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Meal{}).
		Where("id = ? AND user_id = ?", meal.ID, meal.UserID).
		Updates(map[string]interface{}{
			"name":        meal.Name,
			"description": meal.Description,
			"is_on_diet":  meal.IsOnDiet,
		})
	return result.RowsAffected, result.Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Meal{})
	return result.RowsAffected, result.Error
}

func (r *mealRepository) CountMeals(ctx context.Context, userID uuid.UUID, onDiet *bool) (int64, error) {
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Meal{}).Where("user_id = ?", userID)
	if onDiet != nil {
		query = query.Where("is_on_diet = ?", *onDiet)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
