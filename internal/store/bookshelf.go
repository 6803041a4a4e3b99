package store

import (
	"context"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"
)

// GetBookshelfEntry 查詢使用者書架上某本書的紀錄
func GetBookshelfEntry(ctx context.Context, db database.DB, userID, bookID int) (*model.BookshelfEntry, error) {
	row := db.QueryRow(ctx,
		`SELECT s.id, s.user_id, s.book_id, s.status, s.personal_rating, s.review, s.date_added, b.title, b.author
		 FROM bookshelves s
		 JOIN books b ON b.id = s.book_id
		 WHERE s.user_id = $1 AND s.book_id = $2`,
		userID, bookID,
	)
	e := &model.BookshelfEntry{}
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.BookID,
		&e.Status,
		&e.PersonalRating,
		&e.Review,
		&e.DateAdded,
		&e.Title,
		&e.Author,
	); err != nil {
		return nil, fmt.Errorf("GetBookshelfEntry: %w", err)
	}
	return e, nil
}

// ListBookshelf 回傳使用者整個書架（含書名與作者）
func ListBookshelf(ctx context.Context, db database.DB, userID int) ([]model.BookshelfEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT s.id, s.user_id, s.book_id, s.status, s.personal_rating, s.review, s.date_added, b.title, b.author
		 FROM bookshelves s
		 JOIN books b ON b.id = s.book_id
		 WHERE s.user_id = $1
		 ORDER BY s.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookshelf: %w", err)
	}
	defer rows.Close()

	var entries []model.BookshelfEntry
	for rows.Next() {
		e := model.BookshelfEntry{}
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.BookID,
			&e.Status,
			&e.PersonalRating,
			&e.Review,
			&e.DateAdded,
			&e.Title,
			&e.Author,
		); err != nil {
			return nil, fmt.Errorf("ListBookshelf: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookshelf: %w", err)
	}
	return entries, nil
}

func AddBookshelfEntry(ctx context.Context, db database.DB, e *model.BookshelfEntry) (*model.BookshelfEntry, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO bookshelves (user_id, book_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, date_added`,
		e.UserID,
		e.BookID,
		e.Status,
	)
	if err := row.Scan(&e.ID, &e.DateAdded); err != nil {
		return nil, fmt.Errorf("AddBookshelfEntry: %w", err)
	}
	return e, nil
}

func UpdateBookshelfStatus(ctx context.Context, db database.DB, userID, bookID int, status string) error {
	_, err := db.Exec(ctx,
		`UPDATE bookshelves SET status = $1
		 WHERE user_id = $2 AND book_id = $3`,
		status,
		userID,
		bookID,
	)
	if err != nil {
		return fmt.Errorf("UpdateBookshelfStatus: %w", err)
	}
	return nil
}
