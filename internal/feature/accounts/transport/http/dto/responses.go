package dto

import (
	"time"

	"account_backend/internal/feature/accounts/domain/entity"
)

// MessageResponse is the generic response body carrying a human-readable message.
// Every error response and most success responses use this shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfo is the user payload returned by /signin.
// It deliberately has no password field.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SigninResponse is the success response body for /signin.
type SigninResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// UserResponse is one element of the /users listing.
// It deliberately has no password field.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponses converts user entities into listing DTOs,
// stripping the password hash.
func NewUserResponses(users []entity.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
	return res
}
