package model

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the sanitized projection of a user record. It never
// carries the password hash or any pending codes and tokens.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profile_pic"`
	Bio        string    `json:"bio"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"is_verified"`
	LastActive time.Time `json:"last_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type AuthResponse struct {
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
	Message string        `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		Bio:        u.Bio,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		LastActive: u.LastActive,
		CreatedAt:  u.CreatedAt,
	}
}
