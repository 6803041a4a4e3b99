// File: internal/api/bookshelf_response.go
package api

import "time"

// BookshelfEntryResponse 為書架上的一筆書目
// swagger:model api.BookshelfEntryResponse
type BookshelfEntryResponse struct {
	ID        int       `json:"id" example:"1"`
	BookID    int       `json:"book_id" example:"3"`
	Title     string    `json:"title" example:"The Hobbit"`
	Author    string    `json:"author" example:"J. R. R. Tolkien"`
	Status    string    `json:"status" example:"to_read"`
	AddedDate time.Time `json:"added_date"`
}

// swagger:model api.BookshelfResponse
type BookshelfResponse struct {
	Username  string                   `json:"username" example:"alice"`
	Bookshelf []BookshelfEntryResponse `json:"bookshelf"`
}
