package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Username string `form:"username" validate:"required,min=2,max=50"`
	Email    string `form:"email" validate:"required,email,max=100"`
	Password string `form:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
