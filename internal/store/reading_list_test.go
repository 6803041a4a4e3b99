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

func scanListInto(rl model.ReadingList) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = rl.ID
		*dest[1].(*string) = rl.ListName
		*dest[2].(*int) = rl.UserID
		*dest[3].(*time.Time) = rl.CreatedAt
		*dest[4].(**time.Time) = rl.UpdatedAt
		return nil
	}
}

func TestCountReadingLists(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{2}, args)
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 3
				return nil
			}}
		},
	}
	n, err := CountReadingLists(context.Background(), db, 2)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	db.QueryRowFn = func(_ context.Context, _ string, _ ...any) pgx.Row {
		return &fakeRow{scanErr: errors.New("x")}
	}
	_, err = CountReadingLists(context.Background(), db, 2)
	require.Error(t, err)
}

func TestGetAndListReadingLists(t *testing.T) {
	now := time.Now().UTC()
	sample := model.ReadingList{ID: 1, ListName: "summer", UserID: 2, CreatedAt: now}

	t.Run("get by name", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{2, "summer"}, args)
				return &fakeRow{scanFn: scanListInto(sample)}
			},
		}
		rl, err := GetReadingListByName(context.Background(), db, 2, "summer")
		require.NoError(t, err)
		require.Equal(t, 1, rl.ID)
	})

	t.Run("get not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetReadingListByName(context.Background(), db, 2, "nope")
		require.Error(t, err)
	})

	t.Run("list", func(t *testing.T) {
		other := model.ReadingList{ID: 2, ListName: "winter", UserID: 2, CreatedAt: now}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{scans: []func(dest ...any) error{scanListInto(sample), scanListInto(other)}}, nil
			},
		}
		lists, err := ListReadingLists(context.Background(), db, 2)
		require.NoError(t, err)
		require.Len(t, lists, 2)
		require.Equal(t, "winter", lists[1].ListName)
	})
}

func TestCreateAndDeleteReadingList(t *testing.T) {
	now := time.Now().UTC()

	t.Run("create", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"summer", 2}, args)
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 1
					*dest[1].(*time.Time) = now
					return nil
				}}
			},
		}
		rl, err := CreateReadingList(context.Background(), db, &model.ReadingList{ListName: "summer", UserID: 2})
		require.NoError(t, err)
		require.Equal(t, 1, rl.ID)
	})

	t.Run("delete", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteReadingList(context.Background(), db, 1))

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("x")
		}
		require.Error(t, DeleteReadingList(context.Background(), db, 1))
	})
}

func TestReadingListBooks(t *testing.T) {
	t.Run("list books", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{1}, args)
				return &fakeRows{scans: []func(dest ...any) error{func(dest ...any) error {
					*dest[0].(*int) = 3
					*dest[1].(*string) = "A"
					*dest[2].(*string) = "X"
					return nil
				}}}, nil
			},
		}
		books, err := ListReadingListBooks(context.Background(), db, 1)
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Equal(t, "A", books[0].Title)
	})

	t.Run("add book", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1, 3}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, AddBookToReadingList(context.Background(), db, 1, 3))

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("dup")
		}
		require.Error(t, AddBookToReadingList(context.Background(), db, 1, 3))
	})

	t.Run("remove book", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1, 3}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		n, err := RemoveBookFromReadingList(context.Background(), db, 1, 3)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		n, err = RemoveBookFromReadingList(context.Background(), db, 1, 3)
		require.NoError(t, err)
		require.Equal(t, int64(0), n)

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("x")
		}
		_, err = RemoveBookFromReadingList(context.Background(), db, 1, 3)
		require.Error(t, err)
	})
}
