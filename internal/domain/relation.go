package domain

import "time"

// RelationKind names one of the uniquely-keyed (user, target) pair sets.
// Favorite and ShoppingCart target recipes, Subscription targets authors.
type RelationKind string

const (
	KindFavorite     RelationKind = "favorite"
	KindShoppingCart RelationKind = "shopping_cart"
	KindSubscription RelationKind = "subscription"
)

// Favorite связывает пользователя с рецептом в его избранном.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"-" gorm:"foreignKey:UserID"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}

func (Favorite) TableName() string { return "favorites" }

// ShoppingCart связывает пользователя с рецептом в его корзине покупок.
type ShoppingCart struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"-" gorm:"foreignKey:UserID"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }

// Subscription: user follows author. Self-subscription is rejected at the
// service layer before any write.
type Subscription struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_sub_user_author"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_sub_user_author"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User `json:"-" gorm:"foreignKey:UserID"`
	Author *User `json:"-" gorm:"foreignKey:AuthorID"`
}

func (Subscription) TableName() string { return "subscriptions" }
