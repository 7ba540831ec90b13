package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// stubValidator accepts the token "good" for a fixed user and "revoked" for a
// session that is no longer registered.
type stubValidator struct {
	userID uuid.UUID
}

func (v stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	switch token {
	case "good", "revoked":
		return &types.TokenClaims{UserID: v.userID, SessionID: uuid.New()}, nil
	default:
		return nil, errors.New("invalid token")
	}
}

func (v stubValidator) SessionActive(_ context.Context, claims *types.TokenClaims) (bool, error) {
	return claims.UserID == v.userID, nil
}

type revokedValidator struct{ stubValidator }

func (v revokedValidator) SessionActive(context.Context, *types.TokenClaims) (bool, error) {
	return false, nil
}

func performRequest(handler gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	gin.SetMode(gin.TestMode)
	var seen uuid.UUID
	router := gin.New()
	router.GET("/", handler, func(c *gin.Context) {
		seen = UserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	v := stubValidator{userID: userID}

	w, seen := performRequest(AuthMiddleware(v), "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seen)

	w, _ = performRequest(AuthMiddleware(v), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = performRequest(AuthMiddleware(v), "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = performRequest(AuthMiddleware(v), "NotBearer good")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = performRequest(AuthMiddleware(revokedValidator{v}), "Bearer revoked")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	userID := uuid.New()
	v := stubValidator{userID: userID}

	w, seen := performRequest(OptionalAuth(v), "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seen)

	// anonymous and invalid tokens both pass through without identity
	w, seen = performRequest(OptionalAuth(v), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, seen)

	w, seen = performRequest(OptionalAuth(v), "Bearer bad")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, seen)

	w, seen = performRequest(OptionalAuth(revokedValidator{v}), "Bearer revoked")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uuid.Nil, seen)
}
