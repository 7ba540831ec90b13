package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/model"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/testhelpers"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Alex",
		"email":    "alex@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Alex", resp.User.Name)
	assert.Equal(t, "alex@example.com", resp.User.Email)

	// signup also creates the profile document
	assert.Equal(t, 1, env.docs.Count("profiles"))
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"short password", gin.H{"email": "a@example.com", "password": "short"}},
		{"missing password", gin.H{"email": "a@example.com"}},
		{"bad email", gin.H{"email": "not-an-email", "password": "password123"}},
		{"missing email", gin.H{"password": "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Alex", "alex@example.com")

	w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "alex@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// brokenProfiles fails every profile operation.
type brokenProfiles struct{}

func (brokenProfiles) GetProfile(context.Context, uuid.UUID) (*model.UserProfile, error) {
	return nil, errors.New("profile backend down")
}

func (brokenProfiles) EnsureProfile(context.Context, uuid.UUID, string) (*model.UserProfile, error) {
	return nil, errors.New("profile backend down")
}

func (brokenProfiles) UpdateProfile(context.Context, uuid.UUID, *types.UpdateProfileRequest) (*model.UserProfile, error) {
	return nil, errors.New("profile backend down")
}

func TestSignupSucceedsWhenProfileCreationFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewAuthService(testhelpers.SetupSQLite(t), service.NewMemorySessionStore(), "test-secret")

	router := gin.New()
	NewAuthHandler(authSvc, brokenProfiles{}).RegisterRoutes(router.Group("/api/v1"))

	env := &testEnv{router: router}
	w := env.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "alex@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Alex", "alex@example.com")

	w := env.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alex@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Alex", "alex@example.com")

	wrongPassword := env.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alex@example.com",
		"password": "wrongpassword",
	})
	unknownAccount := env.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownAccount.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownAccount.Body.String())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "Alex", "alex@example.com")

	w := env.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// the session is gone afterwards
	w = env.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["user"])
}

func TestLogoutWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	w := env.request(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "Alex", "alex@example.com")

	w := env.request(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user, ok := decodeBody(t, w)["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alex@example.com", user["email"])
}

func TestMeAnonymous(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["user"])

	w = env.request(t, http.MethodGet, "/api/v1/auth/me", "garbage-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["user"])
}
