// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_input/internal/feature/symbollist/domain/entity"
	"stock_input/internal/feature/symbollist/usecase"
)

const (
	activeTrue  = "1"
	activeFalse = "0"
)

// CachingSymbolRepository decorates a SymbolRepository with Redis caching of
// registry lookups. Writes go to the inner repository and invalidate the
// affected keys.
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "symbols".
// A nil rdb disables caching.
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SymbolRepository, namespace string) *CachingSymbolRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListActive is not cached; the symbol list endpoint reads straight from the database.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	return c.inner.ListActive(ctx)
}

// ListActiveCodes returns the active codes, checking the cache first.
func (c *CachingSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ListActiveCodes(ctx)
	}

	key := c.codesKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListActiveCodes(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// IsActive reports whether code is active, checking the cache first.
// Negative results are cached too so unknown symbols do not hit the database repeatedly.
func (c *CachingSymbolRepository) IsActive(ctx context.Context, code string) (bool, error) {
	if c.rdb == nil {
		return c.inner.IsActive(ctx, code)
	}

	key := c.activeKey(code)

	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		switch v {
		case activeTrue:
			return true, nil
		case activeFalse:
			return false, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	active, err := c.inner.IsActive(ctx, code)
	if err != nil {
		return false, err
	}

	v := activeFalse
	if active {
		v = activeTrue
	}
	_ = c.rdb.Set(ctx, key, v, c.ttl).Err()
	return active, nil
}

// Upsert writes through to the inner repository and invalidates the cached
// lookup for the code and the cached code list.
func (c *CachingSymbolRepository) Upsert(ctx context.Context, s entity.Symbol) error {
	if err := c.inner.Upsert(ctx, s); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale entry expires with the TTL
	_ = c.rdb.Del(ctx, c.activeKey(s.Code), c.codesKey()).Err()
	return nil
}

func (c *CachingSymbolRepository) activeKey(code string) string {
	return fmt.Sprintf("%s:active:%s", c.namespace, safe(code))
}

func (c *CachingSymbolRepository) codesKey() string {
	return c.namespace + ":codes"
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
