package types

// Category is the list representation of a recipe category.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeSummary is the list representation of a recipe. Ingredients and
// instructions are omitted to keep list payloads small.
type RecipeSummary struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	CategoryID  uint    `json:"category_id"`
}

// RecipeDetail is the full representation of a single recipe. Ingredients
// are returned as one entry per line of the stored text.
type RecipeDetail struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CategoryID   uint     `json:"category_id"`
	CategoryName string   `json:"category_name"`
}

// RecipeFilter narrows ListRecipes results. Zero values mean no filtering.
type RecipeFilter struct {
	CategoryID *uint
	Query      string
}
