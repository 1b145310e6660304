package repository

import (
	"context"
	"strings"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	if err := r.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// List returns ingredients whose name starts with the given prefix
// (case-insensitive). Empty prefix lists the whole catalog.
func (r *IngredientRepository) List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient

	query := r.db.WithContext(ctx).Order("name")
	if namePrefix != "" {
		prefix := strings.ToLower(strings.TrimSpace(namePrefix))
		query = query.Where("LOWER(name) LIKE ?", prefix+"%")
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByIDs resolves a set of ingredient ids. Missing ids are simply absent
// from the result; the caller decides whether that is an error.
func (r *IngredientRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	return byID, nil
}
