package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

const maxProfileImageSize = 5 << 20

type ProfileHandler struct {
	profileService service.IProfileService
	imageService   service.IImageService
}

// NewProfileHandler creates a ProfileHandler. imageService may be nil when
// no bucket is configured; uploads then answer 503.
func NewProfileHandler(profileService service.IProfileService, imageService service.IImageService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		imageService:   imageService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/image", h.UploadImage)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxProfileImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image must be 5MB or smaller"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	url, err := h.imageService.UploadProfileImage(c.Request.Context(), userID, fileHeader.Filename, contentType, file)
	if err != nil {
		respondError(c, err, "failed to upload image")
		return
	}

	profile, err := h.profileService.SetProfileImage(c.Request.Context(), userID, url)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
