package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"realestate-chat-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler はモニタリング関連の操作のハンドラです。
type MonitoringHandler struct {
	Service *services.MonitoringService
}

// NewMonitoringHandler は新しいMonitoringHandlerを生成します。
func NewMonitoringHandler(service *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{
		Service: service,
	}
}

// GetLogs は集計されたログデータを返します。period は "12h" や "7d" の形式です。
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	hours, ok := parsePeriodHours(c.DefaultQuery("period", "24h"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must look like 24h or 7d (max 30d)"})
		return
	}
	c.JSON(http.StatusOK, h.Service.GetDashboardData(hours))
}

func parsePeriodHours(period string) (int, bool) {
	period = strings.TrimSpace(strings.ToLower(period))
	if len(period) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(period[:len(period)-1])
	if err != nil || n <= 0 {
		return 0, false
	}

	var hours int
	switch period[len(period)-1] {
	case 'h':
		hours = n
	case 'd':
		hours = n * 24
	default:
		return 0, false
	}
	if hours > 24*30 {
		return 0, false
	}
	return hours, true
}
