// File: internal/api/create_book_request.go
package api

// swagger:model api.CreateBookRequest
type CreateBookRequest struct {
	Title       string `json:"title" form:"title" validate:"required" example:"The Hobbit"`
	Author      string `json:"author" form:"author" validate:"required" example:"J. R. R. Tolkien"`
	ISBN        string `json:"isbn" form:"isbn" validate:"required" example:"9780261103344"`
	Genre       string `json:"genre" form:"genre" validate:"required" example:"Fantasy"`
	Description string `json:"description" form:"description" validate:"required" example:"A hobbit goes on an adventure."`

	// 出版日期，格式 YYYY-MM-DD，可省略
	PublishedDate string `json:"published_date,omitempty" form:"published_date" example:"1937-09-21"`
}
