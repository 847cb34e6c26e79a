package dto

import "github.com/leoandrade/payment-api/internal/domain/entity"

// CreateUserRequest represents the API request for registering a user.
// An admin key in the body is ignored.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	UserID   uint64 `json:"user_id"`
	PublicID string `json:"public_id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// UserListResponse wraps the user collection
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// SingleUserResponse wraps one user
type SingleUserResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		UserID:   u.ID,
		PublicID: u.PublicID,
		Name:     u.Username,
		Password: u.PasswordHash,
		Admin:    u.IsAdmin,
	}
}

// NewUserListResponse maps a slice of users, never returning a null list
func NewUserListResponse(users []*entity.User) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return UserListResponse{Users: out}
}
