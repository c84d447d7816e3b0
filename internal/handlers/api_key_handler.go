package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/api_key"
)

// APIKeyManager issues and revokes automation API keys
type APIKeyManager interface {
	GenerateAPIKey(userID string) (*models.APIKey, error)
	GetAPIKeyByUserID(userID string) (*models.APIKey, error)
	DeleteAPIKey(userID string) error
}

// APIKeyHandler handles HTTP requests related to API keys
type APIKeyHandler struct {
	apiKeyService APIKeyManager
}

// NewAPIKeyHandler creates a new APIKeyHandler instance
func NewAPIKeyHandler(apiKeyService APIKeyManager) *APIKeyHandler {
	return &APIKeyHandler{apiKeyService: apiKeyService}
}

// Generate handles POST /api/v1/api-key/generate
// @Summary Generate API key
// @Description Generate a new API key for the authenticated user, replacing the old one
// @Tags api-key
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "success: true, api_key: models.APIKey"
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/api-key/generate [post]
func (h *APIKeyHandler) Generate(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	apiKey, err := h.apiKeyService.GenerateAPIKey(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "API key generated successfully",
		"api_key": apiKey,
	})
}

// Get handles GET /api/v1/api-key
// @Summary Get API key
// @Description Get the API key of the authenticated user
// @Tags api-key
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true, api_key: models.APIKey"
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-key [get]
func (h *APIKeyHandler) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	apiKey, err := h.apiKeyService.GetAPIKeyByUserID(userID)
	if err != nil {
		if errors.Is(err, api_key.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "api_key": apiKey})
}

// Delete handles DELETE /api/v1/api-key
// @Summary Delete API key
// @Description Revoke the API key of the authenticated user
// @Tags api-key
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-key [delete]
func (h *APIKeyHandler) Delete(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.apiKeyService.DeleteAPIKey(userID); err != nil {
		if errors.Is(err, api_key.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "API key deleted successfully"})
}
