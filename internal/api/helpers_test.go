package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/store"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/testhelpers"
)

// testEnv wires real services over an in-memory store and sqlite so handler
// tests exercise the full request path.
type testEnv struct {
	router *gin.Engine
	docs   *store.Memory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLite(t)
	docs := store.NewMemory()

	authSvc := service.NewAuthService(db, service.NewMemorySessionStore(), "test-secret")
	profileSvc := service.NewProfileService(docs, "profiles")
	recipeSvc := service.NewRecipeService(docs, "recipes")

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authSvc, profileSvc).RegisterRoutes(v1)
	NewRecipeHandler(recipeSvc).RegisterRoutes(v1, authSvc)
	NewProfileHandler(profileSvc, nil).RegisterRoutes(v1, authSvc)

	return &testEnv{router: router, docs: docs}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signup registers an account and returns its session token.
func (e *testEnv) signup(t *testing.T, name, email string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
