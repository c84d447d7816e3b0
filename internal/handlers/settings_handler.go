package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
)

// SettingsManager reads and updates system settings
type SettingsManager interface {
	Get() (*models.SystemSettings, error)
	Update(req *models.UpdateSettingsRequest) (*models.SystemSettings, error)
}

// SettingsHandler handles HTTP requests for system settings
type SettingsHandler struct {
	settingsService SettingsManager
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(settingsService SettingsManager) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get godoc
// @Summary Get settings
// @Description Get system settings with API keys masked
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SystemSettings
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		respondError(c, err, "Failed to get settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update settings
// @Description Partially update settings. Masked keys sent back unchanged are ignored.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "success: true, settings: models.SystemSettings"
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		respondError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}
