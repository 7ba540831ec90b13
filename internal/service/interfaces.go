package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/models"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// IAuthService defines the interface for account and session operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	CreateSession(ctx context.Context, email, password string) (string, error)
	DeleteSession(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	SessionActive(ctx context.Context, claims *types.TokenClaims) (bool, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	EnsureProfile(ctx context.Context, userID uuid.UUID, displayName string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.UserProfile, error)
}

// IRecipeService defines the interface for saved-recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, userID uuid.UUID, id string, req *types.UpdateRecipeRequest) (*model.Recipe, error)
	ListRecipes(ctx context.Context, userID uuid.UUID, filter types.RecipeFilter) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, userID uuid.UUID, id string) error
}

// IImageService defines the interface for avatar storage
type IImageService interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (string, error)
}
