// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Check は依存コンポーネント（DB・Redisなど）の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	checks []Check
}

// NewHealthHandler は依存先チェックを持つHealthHandlerを生成します。
func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// いずれかの依存先が応答しない場合は 503 を返します。キャッシュは常に無効です。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	results, ok := h.run(c.Request.Context())
	code := http.StatusOK
	status := "ok"
	if !ok {
		code = http.StatusServiceUnavailable
		status = "unavailable"
	}

	if c.Request.Method == http.MethodHead {
		c.Status(code)
		return
	}

	body := gin.H{"status": status}
	if len(results) > 0 {
		body["checks"] = results
	}
	c.JSON(code, body)
}

func (h *HealthHandler) run(ctx context.Context) (map[string]string, bool) {
	if len(h.checks) == 0 {
		return nil, true
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	ok := true
	results := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			slog.Warn("health check failed", "check", chk.Name, "error", err)
			results[chk.Name] = "unavailable"
			ok = false
			continue
		}
		results[chk.Name] = "ok"
	}
	return results, ok
}
