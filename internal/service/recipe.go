package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidation       = errors.New("validation failed")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrRecipeForbidden  = errors.New("access to recipe denied")
)

// RecipeService handles saved-recipe operations over the recipes collection.
type RecipeService struct {
	store      store.Client
	collection string
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a RecipeService over the recipes collection.
func NewRecipeService(client store.Client, collection string) *RecipeService {
	return &RecipeService{store: client, collection: collection}
}

// CreateRecipe validates and saves a recipe. Validation runs before any store
// call; the caller's identity is injected as the immutable owner field.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(req.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}
	if req.Instructions == "" {
		return nil, fmt.Errorf("%w: instructions are required", ErrValidation)
	}

	recipe := &model.Recipe{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		TotalTime:    req.TotalTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Macros:       req.Macros,
		Reasoning:    req.Reasoning,
		Tips:         req.Tips,
		Tags:         req.Tags,
		UserRating:   req.UserRating,
		UserNotes:    req.UserNotes,
	}

	doc, err := s.store.CreateDocument(ctx, s.collection, "", model.RecipeToData(recipe))
	if err != nil {
		return nil, wrapStoreError("save recipe", "", err)
	}
	return model.RecipeFromDocument(doc), nil
}

// UpdateRecipe merges the provided fields into a saved recipe. The request
// type has no owner field, so an ownership change is dropped before the
// payload is built. An update that is empty after filtering performs no write
// and returns the current state.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID uuid.UUID, id string, req *types.UpdateRecipeRequest) (*model.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	data := updateData(req)
	if len(data) == 0 {
		return s.GetRecipe(ctx, id)
	}

	doc, err := s.store.UpdateDocument(ctx, s.collection, id, data)
	if err != nil {
		return nil, wrapStoreError("update recipe", id, err)
	}
	return model.RecipeFromDocument(doc), nil
}

// ListRecipes lists the caller's saved recipes. An unauthenticated caller
// gets an empty list, never an error. Default order is newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, filter types.RecipeFilter) ([]*model.Recipe, error) {
	if userID == uuid.Nil {
		return []*model.Recipe{}, nil
	}

	opts := store.ListOptions{
		Filters: []store.Filter{{Attribute: model.AttrUserID, Op: store.OpEqual, Value: userID.String()}},
	}
	if filter.Search != "" {
		opts.Filters = append(opts.Filters, store.Filter{
			Attribute: model.AttrTitle,
			Op:        store.OpContains,
			Value:     filter.Search,
			FoldCase:  !filter.MatchCase,
		})
	}
	if filter.Difficulty != "" {
		opts.Filters = append(opts.Filters, store.Filter{
			Attribute: model.AttrDifficulty,
			Op:        store.OpEqual,
			Value:     filter.Difficulty,
		})
	}

	switch filter.Sort {
	case types.SortOldest:
		opts.Sort = []store.Sort{{Attribute: store.CreatedAtField}}
	case types.SortTitle:
		opts.Sort = []store.Sort{{Attribute: model.AttrTitle}}
	default:
		opts.Sort = []store.Sort{{Attribute: store.CreatedAtField, Descending: true}}
	}

	docs, err := s.store.ListDocuments(ctx, s.collection, opts)
	if err != nil {
		return nil, wrapStoreError("list recipes", "", err)
	}

	recipes := make([]*model.Recipe, len(docs))
	for i, doc := range docs {
		recipes[i] = model.RecipeFromDocument(doc)
	}
	return recipes, nil
}

// GetRecipe fetches a single saved recipe, translating store not-found and
// forbidden into their domain errors.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	doc, err := s.store.GetDocument(ctx, s.collection, id)
	if err != nil {
		return nil, wrapStoreError("fetch recipe", id, err)
	}
	return model.RecipeFromDocument(doc), nil
}

// DeleteRecipe removes a saved recipe. Ownership is not verified here;
// authorization is delegated to the store's permission rules.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID uuid.UUID, id string) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}
	if err := s.store.DeleteDocument(ctx, s.collection, id); err != nil {
		return wrapStoreError("delete recipe", id, err)
	}
	return nil
}

func updateData(req *types.UpdateRecipeRequest) map[string]any {
	data := map[string]any{}
	setString := func(attr string, v *string) {
		if v != nil {
			data[attr] = *v
		}
	}
	setString(model.AttrTitle, req.Title)
	setString(model.AttrDescription, req.Description)
	setString(model.AttrInstructions, req.Instructions)
	setString(model.AttrPrepTime, req.PrepTime)
	setString(model.AttrCookTime, req.CookTime)
	setString(model.AttrTotalTime, req.TotalTime)
	setString(model.AttrServings, req.Servings)
	setString(model.AttrDifficulty, req.Difficulty)
	setString(model.AttrReasoning, req.Reasoning)
	setString(model.AttrUserNotes, req.UserNotes)
	if req.Ingredients != nil {
		data[model.AttrIngredients] = req.Ingredients
	}
	if req.Tips != nil {
		data[model.AttrTips] = req.Tips
	}
	if req.Tags != nil {
		data[model.AttrTags] = req.Tags
	}
	if req.Macros != nil {
		data[model.AttrMacros] = model.MacroLines(req.Macros)
	}
	if req.UserRating != nil {
		data[model.AttrUserRating] = *req.UserRating
	}
	return data
}

// wrapStoreError translates coded store failures into domain errors. The
// original backend message is logged, never surfaced.
func wrapStoreError(op, id string, err error) error {
	var se *store.Error
	if errors.As(err, &se) {
		log.Printf("%s: store error code=%d type=%s message=%q", op, se.Code, se.Type, se.Message)
	} else {
		log.Printf("%s: %v", op, err)
	}
	switch {
	case store.IsUnauthorized(err):
		return ErrNotAuthenticated
	case store.IsNotFound(err):
		if id != "" {
			return fmt.Errorf("recipe %s: %w", id, ErrRecipeNotFound)
		}
		return ErrRecipeNotFound
	case store.IsForbidden(err):
		if id != "" {
			return fmt.Errorf("recipe %s: %w", id, ErrRecipeForbidden)
		}
		return ErrRecipeForbidden
	default:
		return fmt.Errorf("%s failed: %w", op, err)
	}
}
