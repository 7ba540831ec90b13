package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// ProfileService handles the per-user settings document. Profiles are created
// lazily on first read or write and never deleted.
type ProfileService struct {
	store      store.Client
	collection string
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a ProfileService over the profiles collection.
func NewProfileService(client store.Client, collection string) *ProfileService {
	return &ProfileService{store: client, collection: collection}
}

// GetProfile fetches the caller's profile, creating a default one if absent.
// The lookup-then-create sequence is not atomic: two concurrent first logins
// can both create a profile. Reads always take the oldest document, so a lost
// race converges on a single winner.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	docs, err := s.store.ListDocuments(ctx, s.collection, store.ListOptions{
		Filters: []store.Filter{{Attribute: model.AttrUserID, Op: store.OpEqual, Value: userID.String()}},
		Sort:    []store.Sort{{Attribute: store.CreatedAtField}},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if len(docs) > 0 {
		return model.ProfileFromDocument(docs[0]), nil
	}

	return s.createDefault(ctx, userID)
}

// EnsureProfile creates the profile document if it does not exist yet. Used
// by signup; callers swallow its error so profile creation never blocks
// account creation.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID uuid.UUID, displayName string) (*model.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	docs, err := s.store.ListDocuments(ctx, s.collection, store.ListOptions{
		Filters: []store.Filter{{Attribute: model.AttrUserID, Op: store.OpEqual, Value: userID.String()}},
		Sort:    []store.Sort{{Attribute: store.CreatedAtField}},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if len(docs) > 0 {
		return model.ProfileFromDocument(docs[0]), nil
	}

	profile := defaultProfile(userID)
	profile.DisplayName = displayName
	doc, err := s.store.CreateDocument(ctx, s.collection, "", model.ProfileToData(profile))
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return model.ProfileFromDocument(doc), nil
}

// UpdateProfile merges the provided fields into the caller's profile,
// creating it first if absent. The owner field is never part of the update
// payload.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.UserProfile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	if req.DisplayName != nil {
		data[model.AttrDisplayName] = *req.DisplayName
	}
	if req.AvatarURL != nil {
		data[model.AttrAvatarURL] = *req.AvatarURL
	}
	if req.DietaryPreferences != nil {
		data[model.AttrDietaryPrefs] = req.DietaryPreferences
	}
	if req.CuisinePreferences != nil {
		data[model.AttrCuisinePrefs] = req.CuisinePreferences
	}
	if req.SkillLevel != nil {
		data[model.AttrSkillLevel] = *req.SkillLevel
	}
	if req.DarkMode != nil {
		data[model.AttrDarkMode] = *req.DarkMode
	}
	if req.SavedIngredients != nil {
		data[model.AttrSavedIngredients] = req.SavedIngredients
	}
	if req.DefaultServings != nil {
		data[model.AttrDefaultServings] = *req.DefaultServings
	}
	if len(data) == 0 {
		return current, nil
	}

	doc, err := s.store.UpdateDocument(ctx, s.collection, current.ID, data)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return model.ProfileFromDocument(doc), nil
}

func (s *ProfileService) createDefault(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	doc, err := s.store.CreateDocument(ctx, s.collection, "", model.ProfileToData(defaultProfile(userID)))
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return model.ProfileFromDocument(doc), nil
}

func defaultProfile(userID uuid.UUID) *model.UserProfile {
	return &model.UserProfile{
		UserID:           userID,
		SkillLevel:       "beginner",
		SavedIngredients: []string{},
		DefaultServings:  2,
	}
}
