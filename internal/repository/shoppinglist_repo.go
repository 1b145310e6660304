package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// CartIngredient is one aggregated line of a user's shopping list.
type CartIngredient struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int64  `gorm:"column:amount"`
}

type ShoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// SumCartIngredients joins the user's cart to recipe ingredients, groups by
// (name, measurement_unit) and sums amounts across every cart recipe. Ordered
// by ingredient name so repeated calls produce identical output.
func (r *ShoppingListRepository) SumCartIngredients(ctx context.Context, userID int64) ([]CartIngredient, error) {
	var rows []CartIngredient
	err := r.db.WithContext(ctx).
		Model(&domain.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
