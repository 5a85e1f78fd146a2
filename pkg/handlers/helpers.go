package handlers

import (
	"errors"
	"log"
	"net/http"

	"realestate-chat-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// respondDatasetError maps data-load failures to a 500 JSON body.
// Missing columns are reported by name so the sheet can be fixed.
func respondDatasetError(c *gin.Context, err error) {
	log.Printf("❌ [データセット] 読み込みに失敗しました: %v", err)

	var missing *services.MissingColumnError
	if errors.As(err, &missing) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  missing.Error(),
			"column": missing.Column,
		})
		return
	}

	var invalid *services.InvalidRowError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  invalid.Error(),
			"row":    invalid.Row,
			"column": invalid.Column,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Data file could not be loaded", "detail": err.Error()})
}
