// File: internal/api/reading_list_response.go
package api

// ReadingListBookEntry 為清單內的一本書
// swagger:model api.ReadingListBookEntry
type ReadingListBookEntry struct {
	ID     int    `json:"id" example:"3"`
	BookID int    `json:"book_id" example:"3"`
	Title  string `json:"title" example:"The Hobbit"`
	Author string `json:"author" example:"J. R. R. Tolkien"`
}

// swagger:model api.ReadingListResponse
type ReadingListResponse struct {
	ID              int                    `json:"id" example:"1"`
	Username        string                 `json:"username" example:"alice"`
	ReadingListName string                 `json:"reading_list_name" example:"summer"`
	Books           []ReadingListBookEntry `json:"books"`
}
