package model

import (
	"log"

	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
)

// Attribute names of the recipe and profile document shapes. The owner field
// is denormalized onto every document and compared against the caller's
// authenticated identity.
const (
	AttrUserID = "userId"

	AttrTitle        = "title"
	AttrDescription  = "description"
	AttrIngredients  = "ingredients"
	AttrInstructions = "instructions"
	AttrPrepTime     = "prepTime"
	AttrCookTime     = "cookTime"
	AttrTotalTime    = "totalTime"
	AttrServings     = "servings"
	AttrDifficulty   = "difficulty"
	AttrMacros       = "macros"
	AttrReasoning    = "reasoning"
	AttrTips         = "tips"
	AttrTags         = "tags"
	AttrUserRating   = "userRating"
	AttrUserNotes    = "userNotes"

	AttrDisplayName      = "displayName"
	AttrAvatarURL        = "avatarUrl"
	AttrDietaryPrefs     = "dietaryPreferences"
	AttrCuisinePrefs     = "cuisinePreferences"
	AttrSkillLevel       = "skillLevel"
	AttrDarkMode         = "darkMode"
	AttrSavedIngredients = "savedIngredients"
	AttrDefaultServings  = "defaultServings"
)

// StringList coerces a stored attribute into a string slice. Stored data can
// drift from the expected schema; a non-list value is replaced by an empty
// list with a warning instead of failing the read.
func StringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				log.Printf("skipping non-string list element %v", item)
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		log.Printf("expected list attribute, got %T; substituting empty list", v)
		return []string{}
	}
}

func stringAttr(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func boolAttr(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// numbers come back as float64 after the JSON round trip
func floatAttr(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func intAttr(data map[string]any, key string) int {
	f, _ := floatAttr(data, key)
	return int(f)
}

// RecipeToData flattens a recipe into the store's attribute shape: macros
// become a string array (or are omitted entirely when absent), everything else
// passes through as scalars and string arrays.
func RecipeToData(r *Recipe) map[string]any {
	data := map[string]any{
		AttrUserID:       r.UserID.String(),
		AttrTitle:        r.Title,
		AttrDescription:  r.Description,
		AttrIngredients:  r.Ingredients,
		AttrInstructions: r.Instructions,
		AttrPrepTime:     r.PrepTime,
		AttrCookTime:     r.CookTime,
		AttrTotalTime:    r.TotalTime,
		AttrServings:     r.Servings,
		AttrDifficulty:   r.Difficulty,
		AttrReasoning:    r.Reasoning,
		AttrTips:         r.Tips,
		AttrTags:         r.Tags,
		AttrUserNotes:    r.UserNotes,
	}
	if lines := MacroLines(r.Macros); len(lines) > 0 {
		data[AttrMacros] = lines
	}
	if r.UserRating != nil {
		data[AttrUserRating] = *r.UserRating
	}
	return data
}

// RecipeFromDocument rebuilds a recipe from a stored document. Every attribute
// read is tolerant: missing or mistyped values fall back to zero values so a
// malformed document never fails a read.
func RecipeFromDocument(doc *store.Document) *Recipe {
	r := &Recipe{
		ID:           doc.ID,
		Title:        stringAttr(doc.Data, AttrTitle),
		Description:  stringAttr(doc.Data, AttrDescription),
		Ingredients:  StringList(doc.Data[AttrIngredients]),
		Instructions: stringAttr(doc.Data, AttrInstructions),
		PrepTime:     stringAttr(doc.Data, AttrPrepTime),
		CookTime:     stringAttr(doc.Data, AttrCookTime),
		TotalTime:    stringAttr(doc.Data, AttrTotalTime),
		Servings:     stringAttr(doc.Data, AttrServings),
		Difficulty:   stringAttr(doc.Data, AttrDifficulty),
		Reasoning:    stringAttr(doc.Data, AttrReasoning),
		UserNotes:    stringAttr(doc.Data, AttrUserNotes),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if v, ok := doc.Data[AttrTips]; ok {
		r.Tips = StringList(v)
	}
	if v, ok := doc.Data[AttrTags]; ok {
		r.Tags = StringList(v)
	}
	if lines, ok := doc.Data[AttrMacros]; ok {
		r.Macros = ParseMacroLines(StringList(lines))
	}
	if rating, ok := floatAttr(doc.Data, AttrUserRating); ok {
		r.UserRating = &rating
	}
	if id, err := uuid.Parse(stringAttr(doc.Data, AttrUserID)); err == nil {
		r.UserID = id
	}
	return r
}

// ProfileToData flattens a profile into the store's attribute shape.
func ProfileToData(p *UserProfile) map[string]any {
	return map[string]any{
		AttrUserID:           p.UserID.String(),
		AttrDisplayName:      p.DisplayName,
		AttrAvatarURL:        p.AvatarURL,
		AttrDietaryPrefs:     p.DietaryPreferences,
		AttrCuisinePrefs:     p.CuisinePreferences,
		AttrSkillLevel:       p.SkillLevel,
		AttrDarkMode:         p.DarkMode,
		AttrSavedIngredients: p.SavedIngredients,
		AttrDefaultServings:  p.DefaultServings,
	}
}

// ProfileFromDocument rebuilds a profile from a stored document with the same
// tolerant reads as RecipeFromDocument.
func ProfileFromDocument(doc *store.Document) *UserProfile {
	p := &UserProfile{
		ID:                 doc.ID,
		DisplayName:        stringAttr(doc.Data, AttrDisplayName),
		AvatarURL:          stringAttr(doc.Data, AttrAvatarURL),
		DietaryPreferences: StringList(doc.Data[AttrDietaryPrefs]),
		CuisinePreferences: StringList(doc.Data[AttrCuisinePrefs]),
		SkillLevel:         stringAttr(doc.Data, AttrSkillLevel),
		DarkMode:           boolAttr(doc.Data, AttrDarkMode),
		SavedIngredients:   StringList(doc.Data[AttrSavedIngredients]),
		DefaultServings:    intAttr(doc.Data, AttrDefaultServings),
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
	if id, err := uuid.Parse(stringAttr(doc.Data, AttrUserID)); err == nil {
		p.UserID = id
	}
	return p
}
