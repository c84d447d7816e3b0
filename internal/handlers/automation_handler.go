package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/automation"
)

// AutomationManager reads, changes and runs the automation pipeline
type AutomationManager interface {
	Get() (*models.AutomationConfig, error)
	Toggle() (*models.AutomationConfig, error)
	Update(req *models.UpdateAutomationRequest) (*models.AutomationConfig, error)
	Run(ctx context.Context) (*automation.RunResult, error)
}

// AutomationHandler handles HTTP requests for the automation pipeline
type AutomationHandler struct {
	automationService AutomationManager
}

// NewAutomationHandler creates a new AutomationHandler instance
func NewAutomationHandler(automationService AutomationManager) *AutomationHandler {
	return &AutomationHandler{automationService: automationService}
}

// Get godoc
// @Summary Get automation config
// @Description Get the automation pipeline configuration
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "automation: models.AutomationConfig"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/automation [get]
func (h *AutomationHandler) Get(c *gin.Context) {
	cfg, err := h.automationService.Get()
	if err != nil {
		respondError(c, err, "Failed to get automation config")
		return
	}

	c.JSON(http.StatusOK, gin.H{"automation": cfg})
}

// Toggle godoc
// @Summary Toggle automation
// @Description Enable or disable the scheduled pipeline
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "automation: models.AutomationConfig"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/automation/toggle [post]
func (h *AutomationHandler) Toggle(c *gin.Context) {
	cfg, err := h.automationService.Toggle()
	if err != nil {
		respondError(c, err, "Failed to update automation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"automation": cfg})
}

// Update godoc
// @Summary Update automation config
// @Description Update niches, style, platforms, types or frequency
// @Tags automation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateAutomationRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "automation: models.AutomationConfig"
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/automation [put]
func (h *AutomationHandler) Update(c *gin.Context) {
	var req models.UpdateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	cfg, err := h.automationService.Update(&req)
	if err != nil {
		respondError(c, err, "Failed to update automation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"automation": cfg})
}

// Run godoc
// @Summary Run the pipeline now
// @Description Generate and store one content item using the automation config
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "automation: models.AutomationConfig, generated: models.ContentItem"
// @Failure 400 {object} map[string]interface{} "provider credentials missing"
// @Failure 409 {object} map[string]interface{} "another run is in progress"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/automation/run [post]
func (h *AutomationHandler) Run(c *gin.Context) {
	result, err := h.automationService.Run(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, automation.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, automation.ErrRunInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run automation", "details": err.Error()})
		}
		return
	}

	cfg, err := h.automationService.Get()
	if err != nil {
		respondError(c, err, "Failed to get automation config")
		return
	}

	c.JSON(http.StatusOK, gin.H{"automation": cfg, "generated": result.Item, "topic": result.Topic})
}
