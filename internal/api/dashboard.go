package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/service"
)

type DashboardHandler struct {
	dashboard service.IDashboardService
}

func NewDashboardHandler(dashboard service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboard.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
