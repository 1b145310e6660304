package relation

import "foodgram/internal/domain"

// ShortRecipe is the compact recipe form returned when a recipe is added to
// favorites or the shopping cart.
type ShortRecipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	CookingTime int    `json:"cooking_time"`
}

func ToShortRecipe(r *domain.Recipe) ShortRecipe {
	return ShortRecipe{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
