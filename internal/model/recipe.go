package model

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the in-memory recipe shape. Structured fields (Macros) and list
// fields are flattened by document.go before storage.
type Recipe struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	PrepTime     string    `json:"prep_time,omitempty"`
	CookTime     string    `json:"cook_time,omitempty"`
	TotalTime    string    `json:"total_time,omitempty"`
	Servings     string    `json:"servings,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	Macros       *Macros   `json:"macros,omitempty"`
	Reasoning    string    `json:"reasoning,omitempty"`
	Tips         []string  `json:"tips,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	UserRating   *float64  `json:"user_rating,omitempty"`
	UserNotes    string    `json:"user_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserProfile is the per-user settings document, one per account, created
// lazily on first read or write and never deleted.
type UserProfile struct {
	ID                 string    `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	DisplayName        string    `json:"display_name,omitempty"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	DietaryPreferences []string  `json:"dietary_preferences,omitempty"`
	CuisinePreferences []string  `json:"cuisine_preferences,omitempty"`
	SkillLevel         string    `json:"skill_level,omitempty"`
	DarkMode           bool      `json:"dark_mode"`
	SavedIngredients   []string  `json:"saved_ingredients,omitempty"`
	DefaultServings    int       `json:"default_servings,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
