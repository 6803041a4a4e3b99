// File: internal/handler/books/cache.go
package books

import (
	"net/http"

	"library-api/internal/api"
	"library-api/internal/openlibrary"

	"github.com/labstack/echo/v4"
)

// CacheInfoHandler 回報 Open Library 搜尋快取統計
// @Summary     快取統計
// @Tags        cache
// @Produce     json
// @Success     200 {object} api.CacheInfoResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cache/openlibrary/info [get]
func CacheInfoHandler(olc *openlibrary.CachedClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		hits, misses, size, err := olc.Stats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CacheInfoResponse{
			Hits:     hits,
			Misses:   misses,
			CurrSize: size,
		})
	}
}

// CacheClearHandler 清空 Open Library 搜尋快取與統計
// @Summary     清空快取
// @Tags        cache
// @Produce     json
// @Success     200 {object} api.DetailResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cache/openlibrary/clear [post]
func CacheClearHandler(olc *openlibrary.CachedClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := olc.Clear(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.DetailResponse{Detail: "Cache cleared."})
	}
}
