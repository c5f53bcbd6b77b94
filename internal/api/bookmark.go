package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

type BookmarkHandler struct {
	bookmarks service.IBookmarkService
}

func NewBookmarkHandler(bookmarks service.IBookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

func (h *BookmarkHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookmarks := router.Group("/bookmarks")
	{
		bookmarks.GET("", h.ListBookmarks)
		bookmarks.POST("", h.AddBookmark)
		bookmarks.DELETE("", h.RemoveBookmark)
		bookmarks.GET("/status", h.Status)
		bookmarks.GET("/search", h.Search)
	}
}

// itemQuery reads and checks the itemId/type query pair.
func itemQuery(c *gin.Context) (string, string, bool) {
	itemID, itemType := c.Query("itemId"), c.Query("type")
	if itemID == "" || !models.ValidBookmarkType(itemType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and type (recipe or exercise) are required"})
		return "", "", false
	}
	return itemID, itemType, true
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	itemType := c.Query("type")
	if itemType != "" && !models.ValidBookmarkType(itemType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be recipe or exercise"})
		return
	}

	bookmarks, err := h.bookmarks.ListBookmarks(c.Request.Context(), userID, itemType)
	if err != nil {
		respondError(c, err, "failed to list bookmarks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bookmark, err := h.bookmarks.AddBookmark(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save bookmark")
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, itemType, ok := itemQuery(c)
	if !ok {
		return
	}

	if err := h.bookmarks.RemoveBookmark(c.Request.Context(), userID, itemID, itemType); err != nil {
		respondError(c, err, "failed to remove bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark removed"})
}

func (h *BookmarkHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, itemType, ok := itemQuery(c)
	if !ok {
		return
	}

	bookmarked, err := h.bookmarks.IsBookmarked(c.Request.Context(), userID, itemID, itemType)
	if err != nil {
		respondError(c, err, "failed to check bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) Search(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookmarks, err := h.bookmarks.SearchBookmarks(c.Request.Context(), userID, q, limit)
	if err != nil {
		respondError(c, err, "failed to search bookmarks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
