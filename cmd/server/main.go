package main

import (
	"log"

	config "realestate-chat-api/configs"
	"realestate-chat-api/pkg/handlers"

	"github.com/joho/godotenv"
)

func main() {
	// .envファイルを読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// 設定の読み込み
	cfg := config.LoadConfig()

	r, err := handlers.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	log.Printf("Starting Real Estate Chat-API server on :%s (source=%s, cache=%t)", cfg.Port, cfg.DataSource, cfg.DatasetCache)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
