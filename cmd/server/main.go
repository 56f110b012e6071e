package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_input/internal/app/di"
	"stock_input/internal/app/router"
	"stock_input/internal/feature/chartinput/domain"
	"stock_input/internal/feature/chartinput/transport/binding"
	chartinputhandler "stock_input/internal/feature/chartinput/transport/handler"
	chartinputusecase "stock_input/internal/feature/chartinput/usecase"
	symbollisthandler "stock_input/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_input/internal/feature/symbollist/usecase"
	"stock_input/internal/platform/config"
	"stock_input/internal/platform/db"
	platformhandler "stock_input/internal/platform/http/handler"
	"stock_input/internal/platform/logger"
	"stock_input/internal/platform/metrics"
	platformredis "stock_input/internal/platform/redis"
	"stock_input/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// gin のバリデーターにカスタムタグを登録
	if err := binding.RegisterWithGin(); err != nil {
		return err
	}

	// db
	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	checks := []platformhandler.Check{{Name: "database", Ping: sqlDB.PingContext}}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
		checks = append(checks, platformhandler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	// Repository / Usecase
	symbolUC := symbollistusecase.NewSymbolUsecase(di.NewSymbolRepository(gdb, rdb, cfg.SymbolCacheTTL))

	reg := metrics.NewRegistry()
	recorder := metrics.NewValidationMetrics(reg, domain.QueryFields()...)

	var registry chartinputusecase.SymbolRegistry
	if cfg.RequireKnownSymbol {
		registry = symbolUC
	}
	chartUC := chartinputusecase.NewChartInputUsecase(registry, recorder)

	// レートリミット（0で無効）
	var limiter ratelimiter.RateLimiterInterface
	if cfg.RateLimitPerMinute > 0 {
		rl := ratelimiter.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		go sweepLoop(ctx, rl)
		limiter = rl
	}

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Health:     platformhandler.NewHealthHandler(checks...),
		ChartInput: chartinputhandler.NewChartInputHandler(chartUC),
		Symbol:     symbollisthandler.NewSymbolHandler(symbolUC),
		Metrics:    metrics.Handler(reg),
	}, router.Options{JWTSecret: cfg.JWTSecret, Logger: log, RateLimiter: limiter})

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. /symbols is unauthenticated.")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr, "require_known_symbol", cfg.RequireKnownSymbol)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sweepLoop は使われなくなったクライアントのバケットを定期的に破棄します。
func sweepLoop(ctx context.Context, rl *ratelimiter.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Sweep(); n > 0 {
				slog.Debug("rate limiter buckets swept", "removed", n)
			}
		}
	}
}
