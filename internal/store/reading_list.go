package store

import (
	"context"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"
)

func CountReadingLists(ctx context.Context, db database.DB, userID int) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT count(*) FROM reading_lists WHERE user_id = $1`,
		userID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountReadingLists: %w", err)
	}
	return n, nil
}

func GetReadingListByName(ctx context.Context, db database.DB, userID int, name string) (*model.ReadingList, error) {
	row := db.QueryRow(ctx,
		`SELECT id, list_name, user_id, created_at, updated_at
		 FROM reading_lists WHERE user_id = $1 AND list_name = $2`,
		userID, name,
	)
	rl := &model.ReadingList{}
	if err := row.Scan(&rl.ID, &rl.ListName, &rl.UserID, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetReadingListByName: %w", err)
	}
	return rl, nil
}

func ListReadingLists(ctx context.Context, db database.DB, userID int) ([]model.ReadingList, error) {
	rows, err := db.Query(ctx,
		`SELECT id, list_name, user_id, created_at, updated_at
		 FROM reading_lists WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReadingLists: %w", err)
	}
	defer rows.Close()

	var lists []model.ReadingList
	for rows.Next() {
		rl := model.ReadingList{}
		if err := rows.Scan(&rl.ID, &rl.ListName, &rl.UserID, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListReadingLists: %w", err)
		}
		lists = append(lists, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReadingLists: %w", err)
	}
	return lists, nil
}

func CreateReadingList(ctx context.Context, db database.DB, rl *model.ReadingList) (*model.ReadingList, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reading_lists (list_name, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		rl.ListName,
		rl.UserID,
	)
	if err := row.Scan(&rl.ID, &rl.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReadingList: %w", err)
	}
	return rl, nil
}

func DeleteReadingList(ctx context.Context, db database.DB, listID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM reading_lists WHERE id = $1`,
		listID,
	)
	if err != nil {
		return fmt.Errorf("DeleteReadingList: %w", err)
	}
	return nil
}

// ListReadingListBooks 回傳清單內的書目（依加入時間排序）
func ListReadingListBooks(ctx context.Context, db database.DB, listID int) ([]model.ReadingListBook, error) {
	rows, err := db.Query(ctx,
		`SELECT b.id, b.title, b.author
		 FROM reading_list_books lb
		 JOIN books b ON b.id = lb.book_id
		 WHERE lb.reading_list_id = $1
		 ORDER BY lb.date_added`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReadingListBooks: %w", err)
	}
	defer rows.Close()

	var books []model.ReadingListBook
	for rows.Next() {
		b := model.ReadingListBook{}
		if err := rows.Scan(&b.BookID, &b.Title, &b.Author); err != nil {
			return nil, fmt.Errorf("ListReadingListBooks: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReadingListBooks: %w", err)
	}
	return books, nil
}

func AddBookToReadingList(ctx context.Context, db database.DB, listID, bookID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO reading_list_books (reading_list_id, book_id)
		 VALUES ($1, $2)`,
		listID, bookID,
	)
	if err != nil {
		return fmt.Errorf("AddBookToReadingList: %w", err)
	}
	return nil
}

// RemoveBookFromReadingList 回傳實際移除的筆數，0 表示書不在清單內
func RemoveBookFromReadingList(ctx context.Context, db database.DB, listID, bookID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM reading_list_books
		 WHERE reading_list_id = $1 AND book_id = $2`,
		listID, bookID,
	)
	if err != nil {
		return 0, fmt.Errorf("RemoveBookFromReadingList: %w", err)
	}
	return tag.RowsAffected(), nil
}
