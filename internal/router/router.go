// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"library-api/internal/cache"
	"library-api/internal/database"
	"library-api/internal/handler"
	"library-api/internal/handler/auth"
	"library-api/internal/handler/books"
	"library-api/internal/handler/users"
	"library-api/internal/middleware"
	"library-api/internal/openlibrary"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, olc *openlibrary.CachedClient) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// 書籍目錄：瀏覽與搜尋公開，異動需登入
	api.GET("/books", books.ListBooksHandler(db))
	api.GET("/books/search", books.SearchBooksHandler(db, olc))
	api.POST("/books", books.CreateBookHandler(db), middleware.RequireAuth)
	api.DELETE("/books/:book_id", books.DeleteBookHandler(db), middleware.RequireAuth)

	// Open Library 快取管理
	apiCache := api.Group("/cache/openlibrary", middleware.RequireAuth)
	apiCache.GET("/info", books.CacheInfoHandler(olc))
	apiCache.POST("/clear", books.CacheClearHandler(olc))

	// 使用者管理
	apiUsers := api.Group("/users", middleware.RequireAuth)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/search", users.SearchUserHandler(db))
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db))
	apiUsers.DELETE("", users.DeleteUserHandler(db))

	// 書架
	apiUsers.POST("/bookshelf", users.AddBookshelfEntryHandler(db))
	apiUsers.GET("/bookshelf", users.GetBookshelfHandler(db))
	apiUsers.PUT("/bookshelf", users.UpdateBookshelfStatusHandler(db))

	// 閱讀清單
	apiUsers.POST("/readinglists", users.CreateReadingListHandler(db))
	apiUsers.GET("/readinglists", users.ListReadingListsHandler(db))
	apiUsers.DELETE("/readinglists/:name", users.DeleteReadingListHandler(db))
	apiUsers.POST("/readinglists/:name/books", users.AddReadingListBookHandler(db))
	apiUsers.DELETE("/readinglists/:name/books/:book_id", users.RemoveReadingListBookHandler(db))
}
