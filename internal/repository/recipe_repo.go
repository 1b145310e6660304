package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// RecipeFilter narrows the recipe query set before any aggregation or
// projection runs. ViewerID == 0 means an anonymous caller; the favorited and
// in-cart flags are then ignored.
type RecipeFilter struct {
	AuthorID  int64
	TagSlugs  []string
	Favorited bool
	InCart    bool
	ViewerID  int64
	Limit     int
	Offset    int
}

// Create persists the recipe, its ingredient rows and its tag set as one
// atomic unit.
func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe, items []domain.RecipeIngredient, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients", "Author").Create(recipe).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Model(recipe).Association("Tags").Replace(tags)
	})
}

// Update replaces scalar fields plus the entire ingredient list and tag set.
// Existing rows are deleted, not diffed.
func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe, items []domain.RecipeIngredient, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
		}
		if err := tx.Model(&domain.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Model(recipe).Association("Tags").Replace(tags)
	})
}

// Delete removes the recipe and every row referencing it: ingredient amounts,
// favorites, cart entries and tag links.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM recipe_ingredients WHERE recipe_id = ?",
			"DELETE FROM favorites WHERE recipe_id = ?",
			"DELETE FROM shopping_carts WHERE recipe_id = ?",
			"DELETE FROM recipe_tags WHERE recipe_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) List(ctx context.Context, f RecipeFilter) ([]domain.Recipe, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if f.AuthorID > 0 {
		base = base.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		base = base.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
	}
	if f.ViewerID > 0 {
		if f.Favorited {
			base = base.Joins("JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?", f.ViewerID)
		}
		if f.InCart {
			base = base.Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id AND shopping_carts.user_id = ?", f.ViewerID)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Distinct("recipes.*").
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Order("recipes.id DESC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}

	var recipes []domain.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListShortByAuthor returns the author's recipes without heavy preloads, for
// the subscriptions projection.
func (r *RecipeRepository) ListShortByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []domain.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}
