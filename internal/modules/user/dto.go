package user

// UserResponse is the public user projection. IsSubscribed reflects whether
// the viewer follows this user; always false for anonymous viewers.
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type ShortRecipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	CookingTime int    `json:"cooking_time"`
}

// SubscriptionResponse is an author the caller follows, with a short form of
// their recipes.
type SubscriptionResponse struct {
	UserResponse
	Recipes      []ShortRecipe `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type SubscriptionListResponse struct {
	Authors []SubscriptionResponse `json:"authors"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	Limit   int                    `json:"limit"`
}
