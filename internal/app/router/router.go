// Package router assembles the gin engine serving the HTTP API.
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	chartinputhandler "stock_input/internal/feature/chartinput/transport/handler"
	symbollisthandler "stock_input/internal/feature/symbollist/transport/handler"
	platformhandler "stock_input/internal/platform/http/handler"
	"stock_input/internal/platform/http/middleware"
	jwtmw "stock_input/internal/platform/jwt"
	"stock_input/internal/shared/ratelimiter"
)

// Handlers は各エンドポイントのハンドラーをまとめたものです。
type Handlers struct {
	Health     *platformhandler.HealthHandler
	ChartInput *chartinputhandler.ChartInputHandler
	Symbol     *symbollisthandler.SymbolHandler
	Metrics    http.Handler
}

// Options はルーター構築時の設定です。
type Options struct {
	// JWTSecret が空でなければ /symbols はBearerトークン必須になります。
	JWTSecret string
	Logger    *slog.Logger

	// RateLimiter が nil でなければ検証エンドポイントにクライアント単位の制限をかけます。
	RateLimiter ratelimiter.RateLimiterInterface
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(opts.Logger))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// チャート入力の検証
	queries := r.Group("/chart-queries")
	if opts.RateLimiter != nil {
		queries.Use(middleware.RateLimit(opts.RateLimiter))
	}
	{
		queries.GET("/validate", h.ChartInput.ValidateQuery)
		queries.POST("/validate", h.ChartInput.ValidateJSON)
	}

	// 銘柄レジストリ
	symbols := r.Group("/symbols")
	if opts.JWTSecret != "" {
		symbols.Use(jwtmw.AuthRequired(opts.JWTSecret))
	}
	{
		symbols.GET("", h.Symbol.List)
		symbols.POST("", h.Symbol.Register)
	}

	return r
}
