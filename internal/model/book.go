// File: internal/model/book.go
package model

import "time"

type Book struct {
	ID            int        `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Author        string     `db:"author" json:"author"`
	ISBN          string     `db:"isbn" json:"isbn"`
	Genre         string     `db:"genre" json:"genre"`
	PublishedDate *time.Time `db:"published_date" json:"published_date,omitempty"`
	PublicRating  *float64   `db:"public_rating" json:"public_rating,omitempty"`
	Description   string     `db:"description" json:"description"`
}
