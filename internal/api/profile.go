package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/middleware"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// ProfileHandler serves the per-user settings endpoints.
type ProfileHandler struct {
	profiles service.IProfileService
	images   service.IImageService
}

// NewProfileHandler creates a ProfileHandler. images may be nil when avatar
// storage is not configured.
func NewProfileHandler(profiles service.IProfileService, images service.IImageService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, images: images}
}

// RegisterRoutes registers the profile endpoints; all of them require a
// session.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	profile := router.Group("/profile", middleware.AuthMiddleware(validator))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/avatar", h.UploadAvatar)
	}
}

// GetProfile returns the caller's profile, creating it on first read.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		writeServiceError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatar stores a new avatar image and records its URL on the profile.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read avatar file"})
		return
	}
	defer func() { _ = file.Close() }()

	userID := middleware.UserID(c)
	url, err := h.images.UploadAvatar(c.Request.Context(), userID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, err, "Failed to upload avatar")
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, &types.UpdateProfileRequest{AvatarURL: &url})
	if err != nil {
		writeServiceError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
