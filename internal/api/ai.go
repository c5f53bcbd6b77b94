package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/internal/middleware"
	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

// AIHandler serves the generative routes the mobile client calls at the root path.
type AIHandler struct {
	ai              service.IAIService
	recommendations service.IRecommendationService
}

// NewAIHandler creates an AIHandler. recommendations may be nil to skip
// saving tips for signed-in callers.
func NewAIHandler(ai service.IAIService, recommendations service.IRecommendationService) *AIHandler {
	return &AIHandler{ai: ai, recommendations: recommendations}
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-ai-tips", h.GenerateTips)
	router.POST("/ai-chatbot", h.Chat)
	router.POST("/estimate-calories", h.EstimateCalories)
}

// bmiText returns the prompt form of a raw bmi value, or false when the value
// is missing or falsy (null, false, 0, "").
func bmiText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false":
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return "", false
		}
		return s, true
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == 0 {
		return "", false
	}
	return string(raw), true
}

func (h *AIHandler) GenerateTips(c *gin.Context) {
	const required = "BMI value or Obesity Risk Level is required"

	var req types.GenerateTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			bindError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": required})
		return
	}
	bmi, ok := bmiText(req.BMI)
	if !ok || req.ObesityRisk == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": required})
		return
	}

	payload, err := h.ai.GenerateTips(c.Request.Context(), bmi, req.ObesityRisk)
	if err != nil {
		log.Error().Err(err).Msg("Error generating AI tips")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes and exercises"})
		return
	}

	if userID, ok := middleware.UserID(c); ok && h.recommendations != nil {
		if _, err := h.recommendations.SaveRecommendation(c.Request.Context(), userID, bmi, req.ObesityRisk, payload); err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to save recommendation history")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":  req.BMI,
		"data": payload,
	})
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.ai.Chat(c.Request.Context(), req.Message)
	if err != nil {
		log.Error().Err(err).Msg("Error in Gemini API")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *AIHandler) EstimateCalories(c *gin.Context) {
	var req types.EstimateCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			bindError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}
	if req.Base64Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	estimate, err := h.ai.EstimateCalories(c.Request.Context(), req.Base64Image)
	if err != nil {
		log.Error().Err(err).Msg("Error in Gemini API")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to analyze image",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    estimate,
	})
}
