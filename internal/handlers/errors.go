package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/autocontent-backend/internal/services/publish"
	"gorm.io/gorm"
)

// respondError maps missing records to 404 and everything else to 500
func respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, publish.ErrContentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": message, "details": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
}
