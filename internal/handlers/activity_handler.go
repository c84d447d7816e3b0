package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// ActivityLister reads the activity feed
type ActivityLister interface {
	List(activityType string, limit, offset int) ([]models.ActivityLog, error)
}

// ActivityHandler serves the activity feed and its live stream
type ActivityHandler struct {
	activityService ActivityLister
	sseHub          *services.SSEHub
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(activityService ActivityLister, sseHub *services.SSEHub) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		sseHub:          sseHub,
	}
}

// List godoc
// @Summary List activities
// @Description Latest activity feed entries, newest first
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param type query string false "Activity type" Enums(generate, publish, schedule, automation, auth, error)
// @Param limit query int false "Max entries" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "activities: []models.ActivityLog"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultActivityLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	activities, err := h.activityService.List(c.Query("type"), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// Stream godoc
// @Summary Stream activities via Server-Sent Events (SSE)
// @Description Stream new activity entries as "activity" events
// @Tags activity
// @Produce text/event-stream
// @Security BearerAuth
// @Param type query string false "Only stream one activity type"
// @Param access_token query string false "Access token for clients that cannot set headers"
// @Success 200 "SSE stream"
// @Router /api/v1/activity/stream [get]
func (h *ActivityHandler) Stream(c *gin.Context) {
	activityType := c.Query("type")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient(activityType)
	defer h.sseHub.UnregisterClient(activityType, clientChan)

	c.SSEvent("connected", gin.H{
		"type":    activityType,
		"message": "Connected to activity stream",
	})
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Debugf("SSE client disconnected: %s", activityType)
			return
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
