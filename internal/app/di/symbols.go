// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_input/internal/feature/symbollist/adapters"
	"stock_input/internal/feature/symbollist/usecase"
	"stock_input/internal/platform/cache"
)

// symbolCacheNamespace はレジストリキャッシュのRedisキー接頭辞です。
const symbolCacheNamespace = "symbols"

// NewSymbolRepository creates a SymbolRepository implementation.
// If Redis is available, the database repository is wrapped with a Redis cache.
// Otherwise, it reads the database directly.
func NewSymbolRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.SymbolRepository {
	repo := adapters.NewSymbolRepository(db)
	if rdb != nil {
		return cache.NewCachingSymbolRepository(rdb, ttl, repo, symbolCacheNamespace)
	}
	return repo
}
