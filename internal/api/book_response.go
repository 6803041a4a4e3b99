// File: internal/api/book_response.go
package api

import "time"

// swagger:model api.BookResponse
type BookResponse struct {
	ID            int        `json:"id" example:"1"`
	Title         string     `json:"title" example:"The Hobbit"`
	Author        string     `json:"author" example:"J. R. R. Tolkien"`
	ISBN          string     `json:"isbn" example:"9780261103344"`
	Genre         string     `json:"genre" example:"Fantasy"`
	Description   string     `json:"description" example:"A hobbit goes on an adventure."`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}
