package domain

// Ingredient is a catalog entry. The (name, measurement_unit) pair is unique:
// "сахар, г" and "сахар, кг" are two different ingredients.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;not null;index;uniqueIndex:idx_name_unit"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200;not null;uniqueIndex:idx_name_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
