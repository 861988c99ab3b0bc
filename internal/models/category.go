package models

// Category groups recipes for browsing. Categories are created by the
// startup seeder only; the API never writes them.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
