package dto

import "github.com/SscSPs/hotel_booking_app/internal/core/domain"

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Admin:    user.Admin,
	}
}
