package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	config "realestate-chat-api/configs"
	"realestate-chat-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// isMaintenanceMode はサーバーがメンテナンスモードかどうかを示します。
var isMaintenanceMode atomic.Bool

// AdminHandler は管理者向け操作のハンドラです。
type AdminHandler struct {
	AdminUsername string
	AdminPassword string
	datasets      *services.DatasetService
}

// NewAdminHandler は新しいAdminHandlerを生成します。
func NewAdminHandler(cfg *config.Config, datasets *services.DatasetService) *AdminHandler {
	return &AdminHandler{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		datasets:      datasets,
	}
}

// AdminCredentials は管理者認証のためのリクエストボディです。
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authorize binds credentials and writes the error response itself when they are rejected.
// An empty configured password disables every admin action.
func (h *AdminHandler) authorize(c *gin.Context) bool {
	var input AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return false
	}
	if h.AdminPassword == "" || input.Username != h.AdminUsername || input.Password != h.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return false
	}
	return true
}

// StartMaintenance はメンテナンスモードを開始します。
func (h *AdminHandler) StartMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	isMaintenanceMode.Store(true)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode started"})
}

// StopMaintenance はメンテナンスモードを停止します。
func (h *AdminHandler) StopMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	isMaintenanceMode.Store(false)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode stopped"})
}

// ReloadDataset はデータソースを再読み込みし、キャッシュを差し替えます。
func (h *AdminHandler) ReloadDataset(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	ds, err := h.datasets.Reload(c.Request.Context())
	if err != nil {
		respondDatasetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Dataset reloaded",
		"source":  h.datasets.SourceName(),
		"rows":    len(ds),
	})
}

// GetHealthStatus は現在のサーバーの状態を返します。
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	status := gin.H{
		"isMaintenanceMode": isMaintenanceMode.Load(),
		"datasetSource":     h.datasets.SourceName(),
	}
	if loadedAt := h.datasets.LoadedAt(); !loadedAt.IsZero() {
		status["datasetLoadedAt"] = loadedAt.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, status)
}

// HealthCheck は外部のヘルスチェッカー（例: ロードバランサー）からのリクエストに応答します。
func HealthCheck(c *gin.Context) {
	if isMaintenanceMode.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": "Server is in maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
