// File: internal/handler/users/bookshelf.go
package users

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/labstack/echo/v4"
)

func toBookshelfEntryResponse(e model.BookshelfEntry) api.BookshelfEntryResponse {
	return api.BookshelfEntryResponse{
		ID:        e.ID,
		BookID:    e.BookID,
		Title:     e.Title,
		Author:    e.Author,
		Status:    e.Status,
		AddedDate: e.DateAdded,
	}
}

func bookshelfResponse(c echo.Context, db database.DB, user *model.User) error {
	entries, err := listBookshelf(c.Request().Context(), db, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
	resp := api.BookshelfResponse{
		Username:  user.Username,
		Bookshelf: make([]api.BookshelfEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Bookshelf = append(resp.Bookshelf, toBookshelfEntryResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

func requireUsername(c echo.Context) (string, bool) {
	username := c.QueryParam("username")
	if strings.TrimSpace(username) == "" {
		_ = c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Message: "You must provide a non-empty username.",
		})
		return "", false
	}
	return username, true
}

// AddBookshelfEntryHandler 將書籍加入使用者書架
// @Summary     加入書架
// @Description 預設狀態為 to_read；同一本書不可重複加入
// @Tags        bookshelf
// @Produce     json
// @Param       username query string true  "使用者名稱"
// @Param       book_id  query int    true  "書籍 ID"
// @Param       status   query string false "閱讀狀態"
// @Success     200 {object} api.BookshelfResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/bookshelf [post]
func AddBookshelfEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		bookID, err := strconv.Atoi(c.QueryParam("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "book_id must be an integer"})
		}

		status := c.QueryParam("status")
		if status == "" {
			status = "to_read"
		}
		if strings.TrimSpace(status) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Status cannot be blank or whitespace."})
		}
		if !model.IsValidReadingStatus(status) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("Invalid status: %s", status)})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		book, err := getBookByID(ctx, db, bookID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Book not found."})
		}
		if _, err := getBookshelfEntry(ctx, db, user.ID, book.ID); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Book already in user's bookshelf."})
		}

		entry, err := addBookshelfEntry(ctx, db, &model.BookshelfEntry{
			UserID: user.ID,
			BookID: book.ID,
			Status: status,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.BookshelfResponse{
			Username: user.Username,
			Bookshelf: []api.BookshelfEntryResponse{{
				ID:        entry.ID,
				BookID:    book.ID,
				Title:     book.Title,
				Author:    book.Author,
				Status:    entry.Status,
				AddedDate: entry.DateAdded,
			}},
		})
	}
}

// GetBookshelfHandler 取得使用者的完整書架
// @Summary     取得書架
// @Tags        bookshelf
// @Produce     json
// @Param       username query string true "使用者名稱"
// @Success     200 {object} api.BookshelfResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/bookshelf [get]
func GetBookshelfHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		user, err := getUserByUsername(c.Request().Context(), db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		return bookshelfResponse(c, db, user)
	}
}

// UpdateBookshelfStatusHandler 更新書架上某本書的閱讀狀態
// @Summary     更新書架狀態
// @Tags        bookshelf
// @Accept      json
// @Produce     json
// @Param       username query string                     true "使用者名稱"
// @Param       book_id  query int                        true "書籍 ID"
// @Param       body     body  api.UpdateBookshelfRequest true "新狀態"
// @Success     200 {object} api.BookshelfResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/bookshelf [put]
func UpdateBookshelfStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		bookID, err := strconv.Atoi(c.QueryParam("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "book_id must be an integer"})
		}

		var req api.UpdateBookshelfRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		if _, err := getBookshelfEntry(ctx, db, user.ID, bookID); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Book not found in user's bookshelf."})
		}
		if !model.IsValidReadingStatus(req.NewStatus) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("Invalid status: %s", req.NewStatus)})
		}

		if err := updateBookshelfState(ctx, db, user.ID, bookID, req.NewStatus); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return bookshelfResponse(c, db, user)
	}
}
