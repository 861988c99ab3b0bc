package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
)

type seedRecipe struct {
	Title        string
	Description  string
	ImageURL     string
	Category     string
	Ingredients  []string
	Instructions string
}

var seedCategories = []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Drinks"}

var seedRecipes = []seedRecipe{
	{
		Title:       "Retro Blueberry Pancakes",
		Description: "Fluffy pancakes with a sweet blueberry pop—Saturday morning vibes.",
		ImageURL:    "https://images.unsplash.com/photo-1528207776546-365bb710ee93?auto=format&fit=crop&w=1200&q=60",
		Category:    "Breakfast",
		Ingredients: []string{
			"1 cup flour",
			"2 tbsp sugar",
			"2 tsp baking powder",
			"1 cup milk",
			"1 egg",
			"1 cup blueberries",
			"Butter for pan",
		},
		Instructions: "Whisk dry ingredients. Add milk and egg, mix until just combined. Fold in blueberries. Cook on a buttered skillet until golden on both sides.",
	},
	{
		Title:       "Neon Avocado Toast",
		Description: "Crispy toast, creamy avocado, and a zing of lime.",
		ImageURL:    "https://images.unsplash.com/photo-1551183053-bf91a1d81141?auto=format&fit=crop&w=1200&q=60",
		Category:    "Breakfast",
		Ingredients: []string{
			"2 slices sourdough",
			"1 ripe avocado",
			"1/2 lime",
			"Salt + pepper",
			"Chili flakes (optional)",
		},
		Instructions: "Toast bread. Mash avocado with lime, salt, and pepper. Spread thickly and finish with chili flakes.",
	},
	{
		Title:       "Classic Diner Grilled Cheese",
		Description: "Golden, melty, and unapologetically nostalgic.",
		ImageURL:    "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?auto=format&fit=crop&w=1200&q=60",
		Category:    "Lunch",
		Ingredients: []string{
			"2 slices bread",
			"2 slices cheddar",
			"1 tbsp butter",
		},
		Instructions: "Butter bread, sandwich cheese, grill low and slow until crisp and gooey.",
	},
	{
		Title:       "Cosmic Tomato Soup",
		Description: "Smooth tomato soup with a basil swirl—pairs perfectly with grilled cheese.",
		ImageURL:    "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=1200&q=60",
		Category:    "Lunch",
		Ingredients: []string{
			"1 tbsp olive oil",
			"1 small onion",
			"2 cloves garlic",
			"1 can crushed tomatoes",
			"2 cups broth",
			"Salt + pepper",
			"Basil (optional)",
		},
		Instructions: "Sauté onion and garlic. Add tomatoes and broth. Simmer 15 minutes, blend smooth, season to taste, garnish with basil.",
	},
	{
		Title:       "Synthwave Stir-Fry",
		Description: "Fast, bright, and packed with crunch—weeknight hero.",
		ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=1200&q=60",
		Category:    "Dinner",
		Ingredients: []string{
			"2 cups mixed veggies",
			"1 tbsp soy sauce",
			"1 tsp honey",
			"1 tsp sesame oil",
			"1 clove garlic",
			"Cooked rice to serve",
		},
		Instructions: "Stir-fry veggies hot and quick. Add garlic, then soy sauce, honey, and sesame oil. Toss, serve over rice.",
	},
	{
		Title:       "Arcade Brownie Squares",
		Description: "Fudgy brownies with crispy edges—high score dessert.",
		ImageURL:    "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&w=1200&q=60",
		Category:    "Dessert",
		Ingredients: []string{
			"1/2 cup butter",
			"1 cup sugar",
			"2 eggs",
			"1/3 cup cocoa powder",
			"1/2 cup flour",
			"Pinch of salt",
		},
		Instructions: "Mix melted butter + sugar. Beat in eggs. Fold in cocoa, flour, salt. Bake at 175°C / 350°F for ~20-25 minutes.",
	},
	{
		Title:       "Minty Pixel Milkshake",
		Description: "Cool mint shake with chocolate chip crunch.",
		ImageURL:    "https://images.unsplash.com/photo-1589733955941-5eeaf752f6dd?auto=format&fit=crop&w=1200&q=60",
		Category:    "Drinks",
		Ingredients: []string{
			"2 cups vanilla ice cream",
			"3/4 cup milk",
			"1/2 tsp peppermint extract",
			"Chocolate chips",
		},
		Instructions: "Blend ice cream, milk, and peppermint. Stir in chips. Serve cold.",
	},
}

// SeedIfEmpty inserts the starter catalog when the categories table has no
// rows. A concurrent instance winning the race is treated as success.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]uint, len(seedCategories))
		for _, name := range seedCategories {
			category := models.Category{Name: name}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %q: %w", name, err)
			}
			categoryIDs[name] = category.ID
		}

		for _, r := range seedRecipes {
			categoryID, ok := categoryIDs[r.Category]
			if !ok {
				return fmt.Errorf("unknown category %q for recipe %q", r.Category, r.Title)
			}
			imageURL := r.ImageURL
			recipe := models.Recipe{
				Title:        r.Title,
				Description:  r.Description,
				ImageURL:     &imageURL,
				Ingredients:  strings.Join(r.Ingredients, "\n"),
				Instructions: r.Instructions,
				CategoryID:   categoryID,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to create recipe %q: %w", r.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Database seeded by another instance, skipping")
			return nil
		}
		return err
	}

	log.Printf("Seeded %d categories and %d recipes", len(seedCategories), len(seedRecipes))
	return nil
}
