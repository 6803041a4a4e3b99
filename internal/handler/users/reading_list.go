// File: internal/handler/users/reading_list.go
package users

import (
	"net/http"
	"strconv"
	"strings"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/labstack/echo/v4"
)

func readingListResponse(c echo.Context, db database.DB, user *model.User, rl *model.ReadingList) (*api.ReadingListResponse, error) {
	books, err := listReadingListBooks(c.Request().Context(), db, rl.ID)
	if err != nil {
		return nil, err
	}
	resp := &api.ReadingListResponse{
		ID:              rl.ID,
		Username:        user.Username,
		ReadingListName: rl.ListName,
		Books:           make([]api.ReadingListBookEntry, 0, len(books)),
	}
	for _, b := range books {
		resp.Books = append(resp.Books, api.ReadingListBookEntry{
			ID:     b.BookID,
			BookID: b.BookID,
			Title:  b.Title,
			Author: b.Author,
		})
	}
	return resp, nil
}

// CreateReadingListHandler 建立閱讀清單，每位使用者最多三個
// @Summary     建立閱讀清單
// @Tags        reading-lists
// @Produce     json
// @Param       username query string true "使用者名稱"
// @Param       name     query string true "清單名稱"
// @Success     200 {object} api.ReadingListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/readinglists [post]
func CreateReadingListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		name := c.QueryParam("name")
		if strings.TrimSpace(name) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "You must provide a non-empty reading list name.",
			})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}

		count, err := countReadingLists(ctx, db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if count >= model.MaxReadingListsPerUser {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "User can have 3 reading lists simultaneously.",
			})
		}
		if _, err := getReadingListByName(ctx, db, user.ID, name); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "Reading list with this name already exists.",
			})
		}

		rl, err := createReadingList(ctx, db, &model.ReadingList{UserID: user.ID, ListName: name})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.ReadingListResponse{
			ID:              rl.ID,
			Username:        user.Username,
			ReadingListName: rl.ListName,
			Books:           []api.ReadingListBookEntry{},
		})
	}
}

// ListReadingListsHandler 取得使用者的所有閱讀清單與清單內書籍
// @Summary     列出閱讀清單
// @Tags        reading-lists
// @Produce     json
// @Param       username query string true "使用者名稱"
// @Success     200 {array}  api.ReadingListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/readinglists [get]
func ListReadingListsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}

		lists, err := listReadingLists(ctx, db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ReadingListResponse, 0, len(lists))
		for i := range lists {
			item, err := readingListResponse(c, db, user, &lists[i])
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			resp = append(resp, *item)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// DeleteReadingListHandler 刪除閱讀清單並回傳被刪除的內容
// @Summary     刪除閱讀清單
// @Tags        reading-lists
// @Produce     json
// @Param       name     path  string true "清單名稱"
// @Param       username query string true "使用者名稱"
// @Success     200 {object} api.ReadingListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/readinglists/{name} [delete]
func DeleteReadingListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		name := c.Param("name")
		if strings.TrimSpace(name) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "You must provide a non-empty reading list name.",
			})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		rl, err := getReadingListByName(ctx, db, user.ID, name)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Reading list not found."})
		}

		resp, err := readingListResponse(c, db, user, rl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := deleteReadingList(ctx, db, rl.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// AddReadingListBookHandler 將書籍加入閱讀清單
// @Summary     加入清單書籍
// @Tags        reading-lists
// @Produce     json
// @Param       name     path  string true "清單名稱"
// @Param       username query string true "使用者名稱"
// @Param       book_id  query int    true "書籍 ID"
// @Success     200 {object} api.ReadingListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/readinglists/{name}/books [post]
func AddReadingListBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		bookID, err := strconv.Atoi(c.QueryParam("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "book_id must be an integer"})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		rl, err := getReadingListByName(ctx, db, user.ID, c.Param("name"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Reading list not found."})
		}
		book, err := getBookByID(ctx, db, bookID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Book not found."})
		}

		books, err := listReadingListBooks(ctx, db, rl.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		for _, b := range books {
			if b.BookID == book.ID {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Book already in reading list."})
			}
		}

		if err := addBookToReadingList(ctx, db, rl.ID, book.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp, err := readingListResponse(c, db, user, rl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// RemoveReadingListBookHandler 自閱讀清單移除書籍
// @Summary     移除清單書籍
// @Tags        reading-lists
// @Produce     json
// @Param       name     path  string true "清單名稱"
// @Param       book_id  path  int    true "書籍 ID"
// @Param       username query string true "使用者名稱"
// @Success     200 {object} api.ReadingListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/readinglists/{name}/books/{book_id} [delete]
func RemoveReadingListBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := requireUsername(c)
		if !ok {
			return nil
		}
		bookID, err := strconv.Atoi(c.Param("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "book_id must be an integer"})
		}

		ctx := c.Request().Context()
		user, err := getUserByUsername(ctx, db, username)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		rl, err := getReadingListByName(ctx, db, user.ID, c.Param("name"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Reading list not found."})
		}

		removed, err := removeBookFromReadingList(ctx, db, rl.ID, bookID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if removed == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Book not found in reading list."})
		}

		resp, err := readingListResponse(c, db, user, rl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
