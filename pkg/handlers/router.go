package handlers

import (
	"fmt"

	config "realestate-chat-api/configs"
	"realestate-chat-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint onto a fresh gin engine.
func NewRouter(cfg *config.Config, datasets *services.DatasetService, monitoring *services.MonitoringService) *gin.Engine {
	r := gin.Default()

	queryHandler := NewQueryHandler(datasets, services.QueryOptions{CurrencySymbol: cfg.CurrencySymbol})
	adminHandler := NewAdminHandler(cfg, datasets)
	monitoringHandler := NewMonitoringHandler(monitoring)

	// ミドルウェアの登録
	r.Use(RequestIDMiddleware())
	r.Use(monitoring.LoggingMiddleware())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-API-KEY", requestIDHeader)
	r.Use(cors.New(corsConfig))

	// ヘルスチェックエンドポイント
	r.GET("/health", HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(AuthMiddleware(cfg.APIKey))
	{
		// 管理者向けAPI
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
			admin.POST("/dataset/reload", adminHandler.ReloadDataset)
		}

		// モニタリングAPI
		monitoringGroup := v1.Group("/monitoring")
		{
			monitoringGroup.GET("/logs", monitoringHandler.GetLogs)
		}

		// 質問応答API
		query := v1.Group("")
		query.Use(MaintenanceMiddleware())
		{
			query.POST("/query", queryHandler.PostQuery)
			query.GET("/locations", queryHandler.GetLocations)
		}
	}

	return r
}

// NewApp builds the dataset service from cfg and returns the ready router.
func NewApp(cfg *config.Config) (*gin.Engine, error) {
	aliases, err := config.LoadColumnAliases(cfg.ColumnMapFile)
	if err != nil {
		return nil, err
	}
	source, err := services.NewDatasetSource(services.SourceConfig{
		Kind:  cfg.DataSource,
		Path:  cfg.DataFile,
		Sheet: cfg.DataSheet,
		DSN:   cfg.DatabaseDSN,
		Table: cfg.DatabaseTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure data source: %w", err)
	}

	datasets := services.NewDatasetService(source, aliases, cfg.DatasetCache)
	return NewRouter(cfg, datasets, services.NewMonitoringService()), nil
}
