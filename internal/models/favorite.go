package models

// Favorite marks a recipe as a favorite of one user. There is no user table;
// the user id is a caller-supplied identifier. The compound unique index
// arbitrates concurrent saves of the same pair.
type Favorite struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   int64  `gorm:"not null;index;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID uint   `gorm:"not null;index;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
