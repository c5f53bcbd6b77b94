package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/bmi"
	"github.com/nutri-app/nutri/backend/internal/types"
)

// CalculateBMI evaluates weight and height into a BMI band with advice.
func CalculateBMI(c *gin.Context) {
	var req types.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := bmi.Evaluate(req.WeightKg, req.HeightCm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
