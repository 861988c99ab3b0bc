package types

// Favorite is the list representation of a saved recipe, joined with the
// recipe's title and image so clients can render a list without extra
// lookups.
type Favorite struct {
	ID             uint    `json:"id"`
	UserID         int64   `json:"user_id"`
	RecipeID       uint    `json:"recipe_id"`
	RecipeTitle    string  `json:"recipe_title"`
	RecipeImageURL *string `json:"recipe_image_url"`
}

// AddFavoriteRequest is the body of POST /favorites. Pointer fields
// distinguish a missing key from a zero value.
type AddFavoriteRequest struct {
	UserID   *int64 `json:"user_id" binding:"required"`
	RecipeID *uint  `json:"recipe_id" binding:"required"`
}
