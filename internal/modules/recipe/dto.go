package recipe

import "foodgram/internal/domain"

type IngredientEntry struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int   `json:"amount" validate:"required"`
}

type CreateRecipeRequest struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Text        string            `json:"text" validate:"required"`
	CookingTime int               `json:"cooking_time" validate:"required"`
	Ingredients []IngredientEntry `json:"ingredients" validate:"required,dive"`
	Tags        []int64           `json:"tags" validate:"required"`
	Image       string            `json:"image,omitempty"`
}

// UpdateRecipeRequest carries the full new state; ingredients and tags are
// replaced wholesale, never patched.
type UpdateRecipeRequest = CreateRecipeRequest

type AuthorResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type IngredientInRecipe struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full read-back projection: resolved ingredient names
// and units, tag objects and author, so callers never re-fetch after a write.
type RecipeResponse struct {
	ID               int64                `json:"id"`
	Tags             []domain.Tag         `json:"tags"`
	Author           AuthorResponse       `json:"author"`
	Ingredients      []IngredientInRecipe `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image,omitempty"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
}

type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
