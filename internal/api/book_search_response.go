// File: internal/api/book_search_response.go
package api

// ExternalBookResult 為 Open Library 搜尋結果的一筆書目
// swagger:model api.ExternalBookResult
type ExternalBookResult struct {
	Title         string  `json:"title" example:"The Hobbit"`
	Author        *string `json:"author" example:"J. R. R. Tolkien"`
	ISBN          *string `json:"isbn" example:"9780261103344"`
	Genre         *string `json:"genre" example:"Fantasy"`
	PublishedYear *int    `json:"published_date" example:"1937"`
}

// BookSearchResponse 同時包含本地與外部搜尋結果
// swagger:model api.BookSearchResponse
type BookSearchResponse struct {
	Local    []BookResponse       `json:"local"`
	External []ExternalBookResult `json:"external"`
}
