// File: internal/model/reading_list.go
package model

import "time"

// MaxReadingListsPerUser 每位使用者可同時持有的閱讀清單上限
const MaxReadingListsPerUser = 3

type ReadingList struct {
	ID        int        `db:"id" json:"id"`
	ListName  string     `db:"list_name" json:"list_name"`
	UserID    int        `db:"user_id" json:"user_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ReadingListBook 代表清單內的一本書（join books）
type ReadingListBook struct {
	BookID int    `db:"book_id" json:"book_id"`
	Title  string `db:"title" json:"title"`
	Author string `db:"author" json:"author"`
}
