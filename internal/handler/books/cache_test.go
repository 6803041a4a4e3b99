package books

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"library-api/internal/cache"
	"library-api/internal/openlibrary"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newStatsCachedClient(cch cache.Cache) *openlibrary.CachedClient {
	return openlibrary.NewCachedClient(nil, cch, syncPool{}, time.Minute)
}

func TestCacheInfoHandler(t *testing.T) {
	e := echo.New()

	t.Run("success", func(t *testing.T) {
		counters := map[string]string{
			"openlibrary:hits":   "12",
			"openlibrary:misses": "4",
		}
		cch := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				if v, ok := counters[key]; ok {
					return redis.NewStringResult(v, nil)
				}
				return redis.NewStringResult("", redis.Nil)
			},
			ScanFn: func(context.Context, uint64, string, int64) *redis.ScanCmd {
				return redis.NewScanCmdResult([]string{"openlibrary:search:a|b|5"}, 0, nil)
			},
		}
		ctx, rec := newGetCtx(e, "/cache/openlibrary/info")
		require.NoError(t, CacheInfoHandler(newStatsCachedClient(cch))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"hits":12`)
		require.Contains(t, rec.Body.String(), `"misses":4`)
		require.Contains(t, rec.Body.String(), `"maxsize":null`)
		require.Contains(t, rec.Body.String(), `"currsize":1`)
	})

	t.Run("cache error", func(t *testing.T) {
		cch := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", errors.New("redis down"))
			},
		}
		ctx, rec := newGetCtx(e, "/cache/openlibrary/info")
		require.NoError(t, CacheInfoHandler(newStatsCachedClient(cch))(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCacheClearHandler(t *testing.T) {
	e := echo.New()

	t.Run("success", func(t *testing.T) {
		var deleted []string
		cch := &cache.FakeCache{
			ScanFn: func(context.Context, uint64, string, int64) *redis.ScanCmd {
				return redis.NewScanCmdResult([]string{"openlibrary:search:a|b|5"}, 0, nil)
			},
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted = keys
				return redis.NewIntResult(int64(len(keys)), nil)
			},
		}
		ctx, rec := newGetCtx(e, "/cache/openlibrary/clear")
		require.NoError(t, CacheClearHandler(newStatsCachedClient(cch))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Cache cleared.")
		require.Contains(t, deleted, "openlibrary:search:a|b|5")
		require.Contains(t, deleted, "openlibrary:hits")
		require.Contains(t, deleted, "openlibrary:misses")
	})

	t.Run("scan error", func(t *testing.T) {
		cch := &cache.FakeCache{
			ScanFn: func(context.Context, uint64, string, int64) *redis.ScanCmd {
				return redis.NewScanCmdResult(nil, 0, errors.New("redis down"))
			},
		}
		ctx, rec := newGetCtx(e, "/cache/openlibrary/clear")
		require.NoError(t, CacheClearHandler(newStatsCachedClient(cch))(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
