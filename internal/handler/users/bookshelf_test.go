package users

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestAddBookshelfEntryHandler(t *testing.T) {
	e := echo.New()

	t.Run("blank username", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "/users/bookshelf?username=%20&book_id=1", "")
		require.NoError(t, AddBookshelfEntryHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "non-empty username")
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "/users/bookshelf?username=anna1&book_id=1&status=on_fire", "")
		require.NoError(t, AddBookshelfEntryHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid status: on_fire")
	})

	t.Run("book not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookByID = func(context.Context, database.DB, int) (*model.Book, error) {
			return nil, errors.New("no rows")
		}
		ctx, rec := newCtx(e, http.MethodPost, "/users/bookshelf?username=anna1&book_id=9", "")
		require.NoError(t, AddBookshelfEntryHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Book not found.")
	})

	t.Run("already shelved", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookByID = func(context.Context, database.DB, int) (*model.Book, error) {
			return &model.Book{ID: 9, Title: "The Hobbit"}, nil
		}
		getBookshelfEntry = func(context.Context, database.DB, int, int) (*model.BookshelfEntry, error) {
			return &model.BookshelfEntry{ID: 3}, nil
		}
		ctx, rec := newCtx(e, http.MethodPost, "/users/bookshelf?username=anna1&book_id=9", "")
		require.NoError(t, AddBookshelfEntryHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Book already in user's bookshelf.")
	})

	t.Run("default status", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookByID = func(context.Context, database.DB, int) (*model.Book, error) {
			return &model.Book{ID: 9, Title: "The Hobbit", Author: "Tolkien"}, nil
		}
		getBookshelfEntry = func(context.Context, database.DB, int, int) (*model.BookshelfEntry, error) {
			return nil, errors.New("no rows")
		}
		addBookshelfEntry = func(_ context.Context, _ database.DB, entry *model.BookshelfEntry) (*model.BookshelfEntry, error) {
			require.Equal(t, "to_read", entry.Status)
			entry.ID = 3
			entry.DateAdded = time.Now()
			return entry, nil
		}
		ctx, rec := newCtx(e, http.MethodPost, "/users/bookshelf?username=anna1&book_id=9", "")
		require.NoError(t, AddBookshelfEntryHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "to_read")
		require.Contains(t, rec.Body.String(), "The Hobbit")
	})
}

func TestGetBookshelfHandler(t *testing.T) {
	e := echo.New()

	t.Run("user not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("no rows")
		}
		ctx, rec := newCtx(e, http.MethodGet, "/users/bookshelf?username=ghost", "")
		require.NoError(t, GetBookshelfHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		listBookshelf = func(context.Context, database.DB, int) ([]model.BookshelfEntry, error) {
			return []model.BookshelfEntry{
				{ID: 3, BookID: 9, Title: "The Hobbit", Author: "Tolkien", Status: "reading"},
			}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/users/bookshelf?username=anna1", "")
		require.NoError(t, GetBookshelfHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "reading")
		require.Contains(t, rec.Body.String(), "anna1")
	})
}

func TestUpdateBookshelfStatusHandler(t *testing.T) {
	e := echo.New()

	t.Run("entry not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookshelfEntry = func(context.Context, database.DB, int, int) (*model.BookshelfEntry, error) {
			return nil, errors.New("no rows")
		}
		ctx, rec := newCtx(e, http.MethodPut, "/users/bookshelf?username=anna1&book_id=9", `{"new_status":"read"}`)
		require.NoError(t, UpdateBookshelfStatusHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Book not found in user's bookshelf.")
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookshelfEntry = func(context.Context, database.DB, int, int) (*model.BookshelfEntry, error) {
			return &model.BookshelfEntry{ID: 3}, nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "/users/bookshelf?username=anna1&book_id=9", `{"new_status":"burned"}`)
		require.NoError(t, UpdateBookshelfStatusHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid status: burned")
	})

	t.Run("success returns whole shelf", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "anna1"}, nil
		}
		getBookshelfEntry = func(context.Context, database.DB, int, int) (*model.BookshelfEntry, error) {
			return &model.BookshelfEntry{ID: 3}, nil
		}
		updateBookshelfState = func(_ context.Context, _ database.DB, userID, bookID int, status string) error {
			require.Equal(t, 1, userID)
			require.Equal(t, 9, bookID)
			require.Equal(t, "read", status)
			return nil
		}
		listBookshelf = func(context.Context, database.DB, int) ([]model.BookshelfEntry, error) {
			return []model.BookshelfEntry{
				{ID: 3, BookID: 9, Title: "The Hobbit", Author: "Tolkien", Status: "read"},
			}, nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "/users/bookshelf?username=anna1&book_id=9", `{"new_status":"read"}`)
		require.NoError(t, UpdateBookshelfStatusHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"read"`)
	})
}
