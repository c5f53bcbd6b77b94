package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

type MealHandler struct {
	meals service.IMealService
}

func NewMealHandler(meals service.IMealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// RegisterRoutes mounts the meal log. analyze runs before the photo analysis
// handler, which is the only meal route that calls the model.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup, analyze ...gin.HandlerFunc) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.MealsForDay)
		meals.POST("", h.AddMeal)
		meals.POST("/analyze", append(analyze, h.AnalyzeMeal)...)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

func (h *MealHandler) MealsForDay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	day, err := h.meals.MealsForDay(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, err, "failed to list meals")
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *MealHandler) AddMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	meal, err := h.meals.AddMeal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save meal")
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) AnalyzeMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.AnalyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	meal, estimate, err := h.meals.AnalyzeMeal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to analyze image")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"meal":     meal,
		"estimate": estimate,
	})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		respondError(c, err, "failed to delete meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
