package domain

import "time"

const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000
)

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"-" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags   []Tag `json:"tags,omitempty" gorm:"many2many:recipe_tags"`

	// Loaded via RecipeIngredient, not a direct association.
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient holds the amount of one ingredient within one recipe.
// Rows are owned by the recipe and replaced wholesale on update.
type RecipeIngredient struct {
	ID           int64 `json:"-" gorm:"primaryKey"`
	RecipeID     int64 `json:"-" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null"`

	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
