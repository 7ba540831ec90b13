package types

import "github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"

// CreateRecipeRequest represents the request body for saving a recipe.
type CreateRecipeRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Ingredients  []string      `json:"ingredients"`
	Instructions string        `json:"instructions"`
	PrepTime     string        `json:"prep_time"`
	CookTime     string        `json:"cook_time"`
	TotalTime    string        `json:"total_time"`
	Servings     string        `json:"servings"`
	Difficulty   string        `json:"difficulty"`
	Macros       *model.Macros `json:"macros"`
	Reasoning    string        `json:"reasoning"`
	Tips         []string      `json:"tips"`
	Tags         []string      `json:"tags"`
	UserRating   *float64      `json:"user_rating"`
	UserNotes    string        `json:"user_notes"`
}

// UpdateRecipeRequest represents the request body for editing a recipe. Every
// field is optional; nil fields are left untouched. There is deliberately no
// owner field, so an attempt to reassign ownership is dropped before the
// payload is built.
type UpdateRecipeRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Ingredients  []string      `json:"ingredients"`
	Instructions *string       `json:"instructions"`
	PrepTime     *string       `json:"prep_time"`
	CookTime     *string       `json:"cook_time"`
	TotalTime    *string       `json:"total_time"`
	Servings     *string       `json:"servings"`
	Difficulty   *string       `json:"difficulty"`
	Macros       *model.Macros `json:"macros"`
	Reasoning    *string       `json:"reasoning"`
	Tips         []string      `json:"tips"`
	Tags         []string      `json:"tags"`
	UserRating   *float64      `json:"user_rating"`
	UserNotes    *string       `json:"user_notes"`
}

// SortMode selects the ordering of a recipe list.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortTitle  SortMode = "title"
)

// RecipeFilter narrows and orders a recipe list.
type RecipeFilter struct {
	// Search is a substring match on the title; MatchCase controls whether it
	// is case sensitive.
	Search    string
	MatchCase bool
	// Difficulty is an exact-match filter when non-empty.
	Difficulty string
	Sort       SortMode
}

// UpdateProfileRequest represents a partial profile update; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	DisplayName        *string  `json:"display_name"`
	AvatarURL          *string  `json:"avatar_url"`
	DietaryPreferences []string `json:"dietary_preferences"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	SkillLevel         *string  `json:"skill_level"`
	DarkMode           *bool    `json:"dark_mode"`
	SavedIngredients   []string `json:"saved_ingredients"`
	DefaultServings    *int     `json:"default_servings"`
}
