// File: internal/model/bookshelf.go
package model

import "time"

// ReadingStatuses 列出書架項目允許的閱讀狀態
var ReadingStatuses = []string{"to_read", "reading", "read", "abandoned"}

// IsValidReadingStatus 檢查狀態是否在允許清單內
func IsValidReadingStatus(s string) bool {
	for _, v := range ReadingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// BookshelfEntry 代表使用者書架上的一筆書目紀錄
type BookshelfEntry struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	BookID         int       `db:"book_id" json:"book_id"`
	Status         string    `db:"status" json:"status"`
	PersonalRating *int      `db:"personal_rating" json:"personal_rating,omitempty"`
	Review         *string   `db:"review" json:"review,omitempty"`
	DateAdded      time.Time `db:"date_added" json:"date_added"`

	// joined columns
	Title  string `db:"title" json:"title"`
	Author string `db:"author" json:"author"`
}
