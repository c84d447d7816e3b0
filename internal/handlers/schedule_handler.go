package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services"
)

// ScheduleManager queues posts for the publish dispatcher
type ScheduleManager interface {
	AddSchedule(contentID, platform string, scheduledAt time.Time) (*models.ScheduledPost, error)
	List() ([]models.ScheduledPost, error)
	Cancel(id string) error
}

// ScheduleHandler handles HTTP requests for scheduled posts
type ScheduleHandler struct {
	scheduleService ScheduleManager
}

// NewScheduleHandler creates a new ScheduleHandler instance
func NewScheduleHandler(scheduleService ScheduleManager) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// List godoc
// @Summary List scheduled posts
// @Description List scheduled posts with their content, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "scheduled: []models.ScheduledPost"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	posts, err := h.scheduleService.List()
	if err != nil {
		respondError(c, err, "Failed to list scheduled posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"scheduled": posts})
}

// Create godoc
// @Summary Schedule a post
// @Description Schedule a content item for publishing
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateScheduleRequest true "Schedule request"
// @Success 201 {object} map[string]interface{} "scheduled: models.ScheduledPost"
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/schedule [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
		return
	}

	post, err := h.scheduleService.AddSchedule(req.ContentID, req.Platform, req.ScheduledAt)
	if err != nil {
		respondError(c, err, "Failed to schedule")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scheduled": post})
}

// Cancel godoc
// @Summary Cancel a scheduled post
// @Description Cancel a pending scheduled post
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheduled post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/schedule/{id} [delete]
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	if err := h.scheduleService.Cancel(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrScheduleNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to cancel scheduled post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scheduled post cancelled"})
}
