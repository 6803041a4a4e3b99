package store

import (
	"context"
	"fmt"

	"library-api/internal/database"
	"library-api/internal/model"
)

const bookColumns = `id, title, author, isbn, genre, published_date, public_rating, description`

func scanBook(row interface{ Scan(dest ...any) error }) (*model.Book, error) {
	b := &model.Book{}
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.Genre,
		&b.PublishedDate,
		&b.PublicRating,
		&b.Description,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func GetBookByID(ctx context.Context, db database.DB, bookID int) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`,
		bookID,
	)
	b, err := scanBook(row)
	if err != nil {
		return nil, fmt.Errorf("GetBookByID: %w", err)
	}
	return b, nil
}

// GetBookByISBNOrTitle 供重複檢查使用：ISBN 或書名撞到即回傳
func GetBookByISBNOrTitle(ctx context.Context, db database.DB, isbn, title string) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE isbn = $1 OR title = $2`,
		isbn, title,
	)
	b, err := scanBook(row)
	if err != nil {
		return nil, fmt.Errorf("GetBookByISBNOrTitle: %w", err)
	}
	return b, nil
}

// SearchBooks 以書名或作者做精確比對；兩者皆給時為 OR 條件
func SearchBooks(ctx context.Context, db database.DB, title, author string) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE title = $1 OR author = $2`
	args := []any{title, author}
	switch {
	case title != "" && author != "":
		// keep OR query
	case title != "":
		query = `SELECT ` + bookColumns + ` FROM books WHERE title = $1`
		args = []any{title}
	case author != "":
		query = `SELECT ` + bookColumns + ` FROM books WHERE author = $1`
		args = []any{author}
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchBooks: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("SearchBooks: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchBooks: %w", err)
	}
	return books, nil
}

func ListBooks(ctx context.Context, db database.DB, offset, limit int) ([]model.Book, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("ListBooks: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	return books, nil
}

func CreateBook(ctx context.Context, db database.DB, b *model.Book) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO books (title, author, isbn, genre, published_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		b.Title,
		b.Author,
		b.ISBN,
		b.Genre,
		b.PublishedDate,
		b.Description,
	)
	if err := row.Scan(&b.ID); err != nil {
		return nil, fmt.Errorf("CreateBook: %w", err)
	}
	return b, nil
}

func DeleteBook(ctx context.Context, db database.DB, bookID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM books WHERE id = $1`,
		bookID,
	)
	if err != nil {
		return fmt.Errorf("DeleteBook: %w", err)
	}
	return nil
}
