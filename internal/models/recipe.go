package models

// Recipe is a catalog entry belonging to exactly one category.
//
// Ingredients are stored as a single newline-joined text blob; the service
// layer splits it into lines for detail responses. Substring search runs
// against the blob as stored, so a query spanning a line break does not match.
type Recipe struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:200;not null;index" json:"title"`
	Description string  `gorm:"type:text;not null;default:''" json:"description"`
	ImageURL    *string `gorm:"type:text" json:"image_url"`

	Ingredients  string `gorm:"type:text;not null;default:''" json:"-"`
	Instructions string `gorm:"type:text;not null;default:''" json:"instructions"`

	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for the Recipe model
func (Recipe) TableName() string {
	return "recipes"
}
