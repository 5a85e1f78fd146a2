package handlers

import (
	"log"
	"net/http"
	"strings"

	"realestate-chat-api/pkg/models"
	"realestate-chat-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// QueryHandler answers natural-language questions about the real-estate dataset.
type QueryHandler struct {
	datasets *services.DatasetService
	opts     services.QueryOptions
}

// NewQueryHandler は新しいQueryHandlerを生成します。
func NewQueryHandler(datasets *services.DatasetService, opts services.QueryOptions) *QueryHandler {
	return &QueryHandler{datasets: datasets, opts: opts}
}

// PostQuery handles POST /api/v1/query with {"query": "..."}.
func (h *QueryHandler) PostQuery(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	ds, index, err := h.datasets.Snapshot(c.Request.Context())
	if err != nil {
		respondDatasetError(c, err)
		return
	}

	text := strings.ToLower(req.Query)
	parsed := index.Parse(text)
	c.Set(services.ContextKeyIntent, parsed.Intent.String())
	log.Printf("💬 [クエリ] %q intent=%s locations=%v years=%v", text, parsed.Intent, parsed.Locations, parsed.Years)

	result := services.AnswerParsedQuery(ds, parsed, h.opts)
	c.JSON(http.StatusOK, result)
}

// GetLocations lists the locations and years a question can refer to.
func (h *QueryHandler) GetLocations(c *gin.Context) {
	ds, err := h.datasets.Dataset(c.Request.Context())
	if err != nil {
		respondDatasetError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.DescribeDataset(ds))
}
