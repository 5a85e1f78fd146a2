package handler

import (
	"log"
	"net/http"
	"sync"

	config "realestate-chat-api/configs"
	"realestate-chat-api/pkg/handlers"

	"github.com/gin-gonic/gin"
)

var (
	app     *gin.Engine
	initErr error
	once    sync.Once
)

// setupApp はGinアプリケーションを初期化します。
// サーバーレス環境では、リクエストごとに初期化が走らないようsync.Onceで一度だけ実行します。
func setupApp() (*gin.Engine, error) {
	once.Do(func() {
		// .envファイルはVercelの環境変数設定から読み込まれるため、ここではgodotenvを呼び出しません。
		cfg := config.LoadConfig()
		app, initErr = handlers.NewApp(cfg)
		if initErr != nil {
			log.Printf("❌ [setupApp] 初期化に失敗しました: %v", initErr)
			return
		}
		log.Printf("🟢 [setupApp] Gin application initialized (source=%s)", cfg.DataSource)
	})
	return app, initErr
}

// Handler はVercelからのすべてのリクエストを処理するエントリーポイントです。
func Handler(w http.ResponseWriter, r *http.Request) {
	engine, err := setupApp()
	if err != nil {
		http.Error(w, `{"error":"service is not configured"}`, http.StatusInternalServerError)
		return
	}
	engine.ServeHTTP(w, r)
}
