// File: internal/api/user_response.go
package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
