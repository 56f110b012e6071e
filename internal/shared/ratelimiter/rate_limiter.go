// Package ratelimiter は呼び出し元ごとのリクエスト頻度を制限します。
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、キー（クライアントIPなど）単位で操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow(key string) bool
}

// RateLimiter はキーごとにトークンバケットを持ちます。
// 最後の利用から idleTTL を過ぎたバケットは Sweep で破棄されます。
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は interval あたり limit 回まで許可するRateLimiterを生成します。
// バーストは limit と同じです。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   rate.Limit(float64(limit) / interval.Seconds()),
		burst:   limit,
		idleTTL: 10 * interval,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow は key の呼び出しを1回消費し、上限内であれば true を返します。
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	rl.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// Sweep はしばらく使われていないバケットを削除し、削除数を返します。
func (rl *RateLimiter) Sweep() int {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for k, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, k)
			removed++
		}
	}
	return removed
}
