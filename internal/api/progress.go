package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

// ProgressHandler serves weight check-ins and the saved recommendation history.
type ProgressHandler struct {
	progress        service.IProgressService
	recommendations service.IRecommendationService
}

func NewProgressHandler(progress service.IProgressService, recommendations service.IRecommendationService) *ProgressHandler {
	return &ProgressHandler{progress: progress, recommendations: recommendations}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/progress", h.ListProgress)
	router.POST("/progress", h.AddProgress)
	router.GET("/recommendations", h.ListRecommendations)
}

func (h *ProgressHandler) ListProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.progress.ListProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": entries})
}

func (h *ProgressHandler) AddProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.progress.AddProgress(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save progress")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ProgressHandler) ListRecommendations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recs, err := h.recommendations.ListRecommendations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list recommendations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
