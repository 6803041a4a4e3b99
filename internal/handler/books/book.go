// File: internal/handler/books/book.go
package books

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/model"
	"library-api/internal/store"

	"github.com/labstack/echo/v4"
)

const pageSize = 20

var (
	listBooks            = store.ListBooks
	searchBooks          = store.SearchBooks
	getBookByID          = store.GetBookByID
	getBookByISBNOrTitle = store.GetBookByISBNOrTitle
	createBook           = store.CreateBook
	deleteBook           = store.DeleteBook
)

func toBookResponse(b model.Book) api.BookResponse {
	return api.BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Genre:         b.Genre,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
	}
}

// ListBooksHandler 分頁列出本地書目
// @Summary     列出書籍
// @Description 依頁碼列出本地儲存的書籍，每頁 20 筆
// @Tags        books
// @Produce     json
// @Param       page query int true "頁碼 (從 1 起算)"
// @Success     200 {array}  api.BookResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /books [get]
func ListBooksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "page must be a positive integer"})
		}

		books, err := listBooks(c.Request().Context(), db, (page-1)*pageSize, pageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.BookResponse, 0, len(books))
		for _, b := range books {
			resp = append(resp, toBookResponse(b))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateBookHandler 新增一本本地書目
// @Summary     新增書籍
// @Description 建立本地書目，ISBN 與書名不可重複
// @Tags        books
// @Accept      json
// @Produce     json
// @Param       body body api.CreateBookRequest true "書籍資料"
// @Success     201 {object} api.BookResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /books [post]
func CreateBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateBookRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		fields := map[string]string{
			"Title":       req.Title,
			"Author":      req.Author,
			"Isbn":        req.ISBN,
			"Genre":       req.Genre,
			"Description": req.Description,
		}
		for _, name := range []string{"Title", "Author", "Isbn", "Genre", "Description"} {
			if strings.TrimSpace(fields[name]) == "" {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{
					Message: fmt.Sprintf("%s cannot be empty or whitespace.", name),
				})
			}
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var published *time.Time
		if req.PublishedDate != "" {
			t, err := time.Parse("2006-01-02", req.PublishedDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "published_date must be YYYY-MM-DD"})
			}
			published = &t
		}

		ctx := c.Request().Context()
		if _, err := getBookByISBNOrTitle(ctx, db, req.ISBN, req.Title); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: fmt.Sprintf("Book with ISBN '%s' or title '%s' already exists", req.ISBN, req.Title),
			})
		}

		book, err := createBook(ctx, db, &model.Book{
			Title:         req.Title,
			Author:        req.Author,
			ISBN:          req.ISBN,
			Genre:         req.Genre,
			Description:   req.Description,
			PublishedDate: published,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toBookResponse(*book))
	}
}

// DeleteBookHandler 刪除本地書目並回傳被刪除的內容
// @Summary     刪除書籍
// @Tags        books
// @Produce     json
// @Param       book_id path int true "書籍 ID"
// @Success     200 {object} api.BookResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /books/{book_id} [delete]
func DeleteBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		bookID, err := strconv.Atoi(c.Param("book_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "book_id must be an integer"})
		}

		ctx := c.Request().Context()
		book, err := getBookByID(ctx, db, bookID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Book not found."})
		}
		if err := deleteBook(ctx, db, bookID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, toBookResponse(*book))
	}
}
