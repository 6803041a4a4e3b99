// File: internal/openlibrary/cached.go
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"library-api/internal/cache"
	"library-api/internal/worker"

	"github.com/redis/go-redis/v9"
)

const (
	searchKeyPrefix = "openlibrary:search:"
	hitsKey         = "openlibrary:hits"
	missesKey       = "openlibrary:misses"
)

// Searcher 抽象 Open Library 查詢，測試可替換
type Searcher interface {
	Search(ctx context.Context, query, author string, limit int) (*SearchResult, error)
}

// CachedClient 將 Open Library 搜尋結果快取於 Redis，並記錄命中統計。
// 快取寫入透過 worker pool 非同步執行，不阻塞請求。
type CachedClient struct {
	searcher Searcher
	cache    cache.Cache
	pool     worker.Pool
	ttl      time.Duration
}

func NewCachedClient(s Searcher, cch cache.Cache, wp worker.Pool, ttl time.Duration) *CachedClient {
	return &CachedClient{searcher: s, cache: cch, pool: wp, ttl: ttl}
}

func searchKey(query, author string, limit int) string {
	return fmt.Sprintf("%s%s|%s|%d", searchKeyPrefix, query, author, limit)
}

// Search 先查快取，未命中才打外部 API 並回填
func (c *CachedClient) Search(ctx context.Context, query, author string, limit int) (*SearchResult, error) {
	key := searchKey(query, author, limit)

	// Get 失敗（含 redis.Nil）一律視為未命中
	if raw, err := c.cache.Get(ctx, key).Result(); err == nil {
		var cached SearchResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			c.cache.Incr(ctx, hitsKey)
			return &cached, nil
		}
	}

	c.cache.Incr(ctx, missesKey)

	result, err := c.searcher.Search(ctx, query, author, limit)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	c.pool.Submit(func() {
		c.cache.Set(context.Background(), key, payload, c.ttl)
	})
	return result, nil
}

// Stats 回傳快取統計：命中、未命中與現存鍵數
func (c *CachedClient) Stats(ctx context.Context) (hits, misses, size int64, err error) {
	hits, err = c.counter(ctx, hitsKey)
	if err != nil {
		return 0, 0, 0, err
	}
	misses, err = c.counter(ctx, missesKey)
	if err != nil {
		return 0, 0, 0, err
	}

	keys, err := c.searchKeys(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	return hits, misses, int64(len(keys)), nil
}

// Clear 清空所有快取項目與統計
func (c *CachedClient) Clear(ctx context.Context) error {
	keys, err := c.searchKeys(ctx)
	if err != nil {
		return err
	}
	keys = append(keys, hitsKey, missesKey)
	if err := c.cache.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("openlibrary: clear cache: %w", err)
	}
	return nil
}

func (c *CachedClient) counter(ctx context.Context, key string) (int64, error) {
	n, err := c.cache.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("openlibrary: read counter: %w", err)
	}
	return n, nil
}

func (c *CachedClient) searchKeys(ctx context.Context) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := c.cache.Scan(ctx, cursor, searchKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("openlibrary: scan cache: %w", err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	return keys, nil
}
