package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/onegreenvn/autocontent-backend/internal/services/excel"
)

// ContentManager generates and manages the content library
type ContentManager interface {
	Generate(ctx context.Context, req *models.GenerateContentRequest) ([]*models.ContentItem, error)
	List(filter models.ContentFilter) ([]models.ContentItem, models.ContentPagination, error)
	Get(id string) (*models.ContentItem, error)
	Delete(id string) error
	ListAll() ([]models.ContentItem, error)
}

// ContentExporter writes content spreadsheets
type ContentExporter interface {
	ExportContentToExcel(items []models.ContentItem) (*excel.ExportResult, error)
	FilePath(filename string) (string, error)
}

// ContentHandler handles HTTP requests for the content library
type ContentHandler struct {
	contentService ContentManager
	exporter       ContentExporter
	basePath       string
}

// NewContentHandler creates a new ContentHandler instance
func NewContentHandler(contentService ContentManager, exporter ContentExporter, basePath string) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		exporter:       exporter,
		basePath:       basePath,
	}
}

// Generate godoc
// @Summary Generate content
// @Description Generate one or more content items (count 1-10) with media for a niche, style, platform and type
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateContentRequest true "Generation request"
// @Success 201 {object} map[string]interface{} "content: []models.ContentItem"
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	var req models.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
		return
	}

	items, err := h.contentService.Generate(c.Request.Context(), &req)
	if err != nil {
		body := gin.H{"error": "Failed to generate content", "details": err.Error()}
		if len(items) > 0 {
			body["content"] = items
			body["count"] = len(items)
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"content": items, "count": len(items)})
}

// List godoc
// @Summary List content
// @Description List the content library newest first
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param platform query string false "Filter by platform"
// @Param niche query string false "Filter by niche"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "content: []models.ContentItem, pagination: models.ContentPagination"
// @Failure 500 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/content [get]
func (h *ContentHandler) List(c *gin.Context) {
	var filter models.ContentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	items, pagination, err := h.contentService.List(filter)
	if err != nil {
		respondError(c, err, "Failed to list content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": items, "pagination": pagination})
}

// Get godoc
// @Summary Get content
// @Description Get one content item
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} models.ContentItem
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	item, err := h.contentService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Content not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete content
// @Description Delete a content item and its scheduled posts
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// Export godoc
// @Summary Export content to Excel
// @Description Export the whole content library to an Excel file
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "filename, download_url"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content/export [get]
func (h *ContentHandler) Export(c *gin.Context) {
	items, err := h.contentService.ListAll()
	if err != nil {
		respondError(c, err, "Failed to load content")
		return
	}

	result, err := h.exporter.ExportContentToExcel(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      result.Message,
		"filename":     result.Filename,
		"download_url": fmt.Sprintf("%s/api/v1/content/export/%s", h.basePath, result.Filename),
		"count":        len(items),
	})
}

// Download godoc
// @Summary Download an export
// @Description Download a previously exported Excel file
// @Tags content
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param filename path string true "Export filename"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/content/export/{filename} [get]
func (h *ContentHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.exporter.FilePath(filename)
	if err != nil {
		if errors.Is(err, excel.ErrInvalidFilename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(path, filename)
}
