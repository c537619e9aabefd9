package converter

import (
	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
