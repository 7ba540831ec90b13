package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// countingStore wraps a Client and counts write calls, so tests can assert
// that validation failures and empty updates never reach the backend.
type countingStore struct {
	store.Client
	creates int
	updates int
}

func (c *countingStore) CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*store.Document, error) {
	c.creates++
	return c.Client.CreateDocument(ctx, collection, id, data)
}

func (c *countingStore) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*store.Document, error) {
	c.updates++
	return c.Client.UpdateDocument(ctx, collection, id, data)
}

// forbiddenStore rejects every call with a permission error.
type forbiddenStore struct {
	store.Client
}

func (forbiddenStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	return nil, store.Forbidden("not allowed")
}

func (forbiddenStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return store.Forbidden("not allowed")
}

// unauthorizedStore reports an expired backend session on every read.
type unauthorizedStore struct {
	store.Client
}

func (unauthorizedStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	return nil, store.Unauthorized("session expired")
}

func validCreateRequest() *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Title:        "Garlic Butter Salmon",
		Ingredients:  []string{"salmon fillet", "butter", "garlic"},
		Instructions: "Sear the salmon, baste with garlic butter.",
		Difficulty:   "Easy",
		Macros:       &model.Macros{Calories: "450 kcal", Protein: "30g"},
	}
}

func TestCreateRecipe(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	userID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), userID, validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, userID, recipe.UserID)
	assert.Equal(t, "Garlic Butter Salmon", recipe.Title)
	require.NotNil(t, recipe.Macros)
	assert.Equal(t, "450 kcal", recipe.Macros.Calories)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	_, err := svc.CreateRecipe(context.Background(), uuid.Nil, validCreateRequest())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCreateRecipeValidatesBeforeStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.CreateRecipeRequest)
	}{
		{"missing title", func(r *types.CreateRecipeRequest) { r.Title = "" }},
		{"no ingredients", func(r *types.CreateRecipeRequest) { r.Ingredients = nil }},
		{"missing instructions", func(r *types.CreateRecipeRequest) { r.Instructions = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &countingStore{Client: store.NewMemory()}
			svc := NewRecipeService(cs, "recipes")

			req := validCreateRequest()
			tt.mutate(req)
			_, err := svc.CreateRecipe(context.Background(), uuid.New(), req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, cs.creates, "validation failure must not reach the store")
		})
	}
}

func TestUpdateRecipeMergesFields(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	userID := uuid.New()
	created, err := svc.CreateRecipe(context.Background(), userID, validCreateRequest())
	require.NoError(t, err)

	title := "Garlic Salmon, Improved"
	rating := 5.0
	updated, err := svc.UpdateRecipe(context.Background(), userID, created.ID, &types.UpdateRecipeRequest{
		Title:      &title,
		UserRating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	require.NotNil(t, updated.UserRating)
	assert.Equal(t, rating, *updated.UserRating)
	// untouched fields survive the merge
	assert.Equal(t, created.Ingredients, updated.Ingredients)
	assert.Equal(t, userID, updated.UserID)
}

func TestUpdateRecipeEmptyRequestIsNoOp(t *testing.T) {
	cs := &countingStore{Client: store.NewMemory()}
	svc := NewRecipeService(cs, "recipes")
	userID := uuid.New()
	created, err := svc.CreateRecipe(context.Background(), userID, validCreateRequest())
	require.NoError(t, err)

	got, err := svc.UpdateRecipe(context.Background(), userID, created.ID, &types.UpdateRecipeRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Zero(t, cs.updates, "empty update must not write")
}

func TestUpdateRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	title := "x"
	_, err := svc.UpdateRecipe(context.Background(), uuid.New(), "missing-id", &types.UpdateRecipeRequest{Title: &title})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Contains(t, err.Error(), "missing-id")
	assert.Contains(t, err.Error(), "not found")
}

func TestListRecipesUnauthenticatedIsEmpty(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	recipes, err := svc.ListRecipes(context.Background(), uuid.Nil, types.RecipeFilter{})
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestListRecipesScopedToOwner(t *testing.T) {
	mem := store.NewMemory()
	svc := NewRecipeService(mem, "recipes")
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.CreateRecipe(context.Background(), alice, validCreateRequest())
	require.NoError(t, err)
	req := validCreateRequest()
	req.Title = "Beet Salad"
	_, err = svc.CreateRecipe(context.Background(), bob, req)
	require.NoError(t, err)

	recipes, err := svc.ListRecipes(context.Background(), alice, types.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, alice, recipes[0].UserID)
}

func TestListRecipesSearchAndSort(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	userID := uuid.New()
	titles := []string{"french toast", "Beet Salad", "Garlic Salmon"}
	for _, title := range titles {
		req := validCreateRequest()
		req.Title = title
		_, err := svc.CreateRecipe(context.Background(), userID, req)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	recipes, err := svc.ListRecipes(context.Background(), userID, types.RecipeFilter{Search: "SALMON"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Garlic Salmon", recipes[0].Title)

	recipes, err = svc.ListRecipes(context.Background(), userID, types.RecipeFilter{Search: "SALMON", MatchCase: true})
	require.NoError(t, err)
	assert.Empty(t, recipes)

	recipes, err = svc.ListRecipes(context.Background(), userID, types.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Garlic Salmon", recipes[0].Title, "default order is newest first")

	recipes, err = svc.ListRecipes(context.Background(), userID, types.RecipeFilter{Sort: types.SortTitle})
	require.NoError(t, err)
	assert.Equal(t, "Beet Salad", recipes[0].Title)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	_, err := svc.GetRecipe(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Contains(t, err.Error(), "missing-id")
}

func TestGetRecipeUnauthorized(t *testing.T) {
	svc := NewRecipeService(unauthorizedStore{Client: store.NewMemory()}, "recipes")
	_, err := svc.GetRecipe(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetRecipeForbidden(t *testing.T) {
	svc := NewRecipeService(forbiddenStore{Client: store.NewMemory()}, "recipes")
	_, err := svc.GetRecipe(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrRecipeForbidden)
}

func TestDeleteRecipe(t *testing.T) {
	svc := NewRecipeService(store.NewMemory(), "recipes")
	userID := uuid.New()
	created, err := svc.CreateRecipe(context.Background(), userID, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(context.Background(), userID, created.ID))
	_, err = svc.GetRecipe(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipeForbidden(t *testing.T) {
	svc := NewRecipeService(forbiddenStore{Client: store.NewMemory()}, "recipes")
	err := svc.DeleteRecipe(context.Background(), uuid.New(), "r1")
	assert.ErrorIs(t, err, ErrRecipeForbidden)
}
