// File: internal/handler/books/search.go
package books

import (
	"net/http"
	"strconv"
	"strings"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/openlibrary"

	"github.com/labstack/echo/v4"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
)

func toExternalResult(doc openlibrary.Doc) api.ExternalBookResult {
	res := api.ExternalBookResult{
		Title:         doc.Title,
		PublishedYear: doc.FirstPublishYear,
	}
	if len(doc.AuthorName) > 0 {
		author := strings.Join(doc.AuthorName, ", ")
		res.Author = &author
	}
	if len(doc.ISBN) > 0 {
		isbn := doc.ISBN[0]
		res.ISBN = &isbn
	}
	if len(doc.Subject) > 0 {
		genre := strings.Join(doc.Subject, ", ")
		res.Genre = &genre
	}
	return res
}

// SearchBooksHandler 以書名或作者搜尋本地書目，可選擇聯查 Open Library
// @Summary     搜尋書籍
// @Description 書名與作者至少需提供一項；external=true 時同時查詢 Open Library
// @Tags        books
// @Produce     json
// @Param       title    query string false "書名"
// @Param       author   query string false "作者"
// @Param       limit    query int    false "外部結果上限 (1-20，預設 5)"
// @Param       external query bool   false "是否查詢 Open Library"
// @Success     200 {object} api.BookSearchResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /books/search [get]
func SearchBooksHandler(db database.DB, olc *openlibrary.CachedClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		title := c.QueryParam("title")
		author := c.QueryParam("author")
		if strings.TrimSpace(title) == "" && strings.TrimSpace(author) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "You must provide at least a non-empty title or author.",
			})
		}

		limit := defaultSearchLimit
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxSearchLimit {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "limit must be between 1 and 20"})
			}
			limit = n
		}
		external, _ := strconv.ParseBool(c.QueryParam("external"))

		ctx := c.Request().Context()
		local, err := searchBooks(ctx, db, title, author)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.BookSearchResponse{
			Local:    make([]api.BookResponse, 0, len(local)),
			External: []api.ExternalBookResult{},
		}
		for _, b := range local {
			resp.Local = append(resp.Local, toBookResponse(b))
		}

		if external {
			query := title
			if query == "" {
				query = author
			}
			result, err := olc.Search(ctx, query, author, limit)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			for _, doc := range result.Docs {
				resp.External = append(resp.External, toExternalResult(doc))
			}
		}

		if len(resp.Local) == 0 && !external {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No data found locally."})
		}

		return c.JSON(http.StatusOK, resp)
	}
}
