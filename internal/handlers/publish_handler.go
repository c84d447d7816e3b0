package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/publish"
)

// Publisher publishes a content item right away
type Publisher interface {
	PublishContent(ctx context.Context, contentID, platform string) (*models.PublishResult, error)
}

// AccountManager lists and connects platform accounts
type AccountManager interface {
	List() ([]models.PlatformAccount, error)
	Connect(platform, apiKey string) (*models.PlatformAccount, error)
	Disconnect(platform string) (*models.PlatformAccount, error)
}

// PublishHandler handles immediate publishing and the publish history
type PublishHandler struct {
	publisher Publisher
	accounts  AccountManager
	content   ContentManager
}

// NewPublishHandler creates a new PublishHandler instance
func NewPublishHandler(publisher Publisher, accounts AccountManager, content ContentManager) *PublishHandler {
	return &PublishHandler{
		publisher: publisher,
		accounts:  accounts,
		content:   content,
	}
}

// History godoc
// @Summary Publish overview
// @Description Get connected accounts and published content
// @Tags publish
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "accounts: []models.PlatformAccount, publish_history: []models.ContentItem"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/publish [get]
func (h *PublishHandler) History(c *gin.Context) {
	accounts, err := h.accounts.List()
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}

	published, _, err := h.content.List(models.ContentFilter{Status: models.ContentStatusPublished, Page: 1, PageSize: 100})
	if err != nil {
		respondError(c, err, "Failed to list published content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "publish_history": published})
}

// Publish godoc
// @Summary Publish content
// @Description Publish a content item to a platform now
// @Tags publish
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PublishRequest true "Publish request"
// @Success 200 {object} models.PublishResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/publish [post]
func (h *PublishHandler) Publish(c *gin.Context) {
	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing contentId or platform", "details": err.Error()})
		return
	}

	result, err := h.publisher.PublishContent(c.Request.Context(), req.ContentID, req.Platform)
	if err != nil {
		if errors.Is(err, publish.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		respondError(c, err, "Failed to publish")
		return
	}

	c.JSON(http.StatusOK, result)
}
