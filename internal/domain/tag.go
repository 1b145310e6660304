package domain

// Tag is admin-managed, read-only over the API.
type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200;uniqueIndex;not null"`
	Slug  string `json:"slug" gorm:"size:200;uniqueIndex;not null"`
	Color string `json:"color" gorm:"size:7;default:#FF0000"`
}

func (Tag) TableName() string { return "tags" }
