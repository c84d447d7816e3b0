package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// DashboardProvider aggregates the dashboard home page
type DashboardProvider interface {
	GetDashboard() (*models.DashboardResponse, error)
}

// DashboardHandler serves the dashboard summary
type DashboardHandler struct {
	dashboardService DashboardProvider
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService DashboardProvider) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// @Summary Dashboard
// @Description Stats, recent activity, recent content, upcoming posts and automation config
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
