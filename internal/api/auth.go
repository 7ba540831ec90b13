package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/models"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
)

// AuthHandler serves the login and signup forms' submit actions.
type AuthHandler struct {
	auth     service.IAuthService
	profiles service.IProfileService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth service.IAuthService, profiles service.IProfileService) *AuthHandler {
	return &AuthHandler{auth: auth, profiles: profiles}
}

// RegisterRoutes registers the auth endpoints.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

// Register creates an account, starts a session and lazily creates the
// profile document. A profile-creation failure is logged and swallowed so it
// never blocks signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.auth.CreateSession(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("post-signup session failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	if _, err := h.profiles.EnsureProfile(c.Request.Context(), user.ID, req.Name); err != nil {
		log.Printf("profile creation after signup failed for %s: %v", user.ID, err)
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: userResponse(user)})
}

// Login starts a session. It does not touch the profile document. The error
// message never distinguishes wrong-password from unknown-account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.CreateSession(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// Logout ends the current session. Failures are logged and swallowed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := headerToken(c); token != "" {
		if err := h.auth.DeleteSession(c.Request.Context(), token); err != nil {
			log.Printf("logout failed: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me reports the current identity, or a null user when there is no session.
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := h.auth.CurrentUser(c.Request.Context(), headerToken(c))
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

func headerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func userResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
