// File: internal/api/update_bookshelf_request.go
package api

// swagger:model api.UpdateBookshelfRequest
type UpdateBookshelfRequest struct {
	NewStatus string `json:"new_status" validate:"required" example:"reading"`
}
