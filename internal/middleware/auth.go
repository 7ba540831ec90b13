package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "user_id"

// TokenValidator validates session tokens and checks session revocation.
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	SessionActive(ctx context.Context, claims *types.TokenClaims) (bool, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware creates a middleware that requires a valid, unrevoked
// session token.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		active, err := validator.SessionActive(c.Request.Context(), claims)
		if err != nil || !active {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is present
// and otherwise leaves the request anonymous. Listing endpoints use it so an
// unauthenticated caller gets an empty result instead of a 401.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}
		if active, err := validator.SessionActive(c.Request.Context(), claims); err != nil || !active {
			c.Next()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID extracts the authenticated user ID from the context; uuid.Nil means
// anonymous.
func UserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
