package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func scanBookInto(b model.Book) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = b.ID
		*dest[1].(*string) = b.Title
		*dest[2].(*string) = b.Author
		*dest[3].(*string) = b.ISBN
		*dest[4].(*string) = b.Genre
		*dest[5].(**time.Time) = b.PublishedDate
		*dest[6].(**float64) = b.PublicRating
		*dest[7].(*string) = b.Description
		return nil
	}
}

func TestGetBook(t *testing.T) {
	sample := model.Book{ID: 3, Title: "The Hobbit", Author: "Tolkien", ISBN: "9780261103344", Genre: "Fantasy", Description: "d"}

	t.Run("by id success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: scanBookInto(sample)}
			},
		}
		b, err := GetBookByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, "The Hobbit", b.Title)
	})

	t.Run("by id not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetBookByID(context.Background(), db, 99)
		require.Error(t, err)
	})

	t.Run("by isbn or title", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{scanFn: scanBookInto(sample)}
			},
		}
		b, err := GetBookByISBNOrTitle(context.Background(), db, "9780261103344", "The Hobbit")
		require.NoError(t, err)
		require.Equal(t, 3, b.ID)
		require.Equal(t, []any{"9780261103344", "The Hobbit"}, gotArgs)
	})
}

func TestSearchBooks(t *testing.T) {
	a := model.Book{ID: 1, Title: "A", Author: "X", ISBN: "1", Genre: "g", Description: "d"}
	b := model.Book{ID: 2, Title: "B", Author: "X", ISBN: "2", Genre: "g", Description: "d"}

	t.Run("title and author use OR", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				require.Equal(t, []any{"A", "X"}, args)
				return &fakeRows{scans: []func(dest ...any) error{scanBookInto(a), scanBookInto(b)}}, nil
			},
		}
		books, err := SearchBooks(context.Background(), db, "A", "X")
		require.NoError(t, err)
		require.Len(t, books, 2)
		require.Contains(t, gotSQL, "OR")
	})

	t.Run("title only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{"A"}, args)
				return &fakeRows{scans: []func(dest ...any) error{scanBookInto(a)}}, nil
			},
		}
		books, err := SearchBooks(context.Background(), db, "A", "")
		require.NoError(t, err)
		require.Len(t, books, 1)
	})

	t.Run("author only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{"X"}, args)
				return &fakeRows{scans: []func(dest ...any) error{scanBookInto(a), scanBookInto(b)}}, nil
			},
		}
		books, err := SearchBooks(context.Background(), db, "", "X")
		require.NoError(t, err)
		require.Len(t, books, 2)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("q")
			},
		}
		_, err := SearchBooks(context.Background(), db, "A", "")
		require.Error(t, err)
	})
}

func TestListBooks(t *testing.T) {
	a := model.Book{ID: 1, Title: "A", Author: "X", ISBN: "1", Genre: "g", Description: "d"}

	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			require.Equal(t, []any{0, 20}, args)
			return &fakeRows{scans: []func(dest ...any) error{scanBookInto(a)}}, nil
		},
	}
	books, err := ListBooks(context.Background(), db, 0, 20)
	require.NoError(t, err)
	require.Len(t, books, 1)

	db.QueryFn = func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
		return &fakeRows{err: errors.New("rows")}, nil
	}
	_, err = ListBooks(context.Background(), db, 0, 20)
	require.Error(t, err)
}

func TestCreateAndDeleteBook(t *testing.T) {
	t.Run("create success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 6)
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 9
					return nil
				}}
			},
		}
		b, err := CreateBook(context.Background(), db, &model.Book{Title: "A", Author: "X", ISBN: "1", Genre: "g", Description: "d"})
		require.NoError(t, err)
		require.Equal(t, 9, b.ID)
	})

	t.Run("create error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateBook(context.Background(), db, &model.Book{})
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{9}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteBook(context.Background(), db, 9))

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("x")
		}
		require.Error(t, DeleteBook(context.Background(), db, 9))
	})
}
