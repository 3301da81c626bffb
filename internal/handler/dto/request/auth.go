package request

import (
	"hotel-booking-api/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Phone    string `json:"phone" binding:"required,max=30"`
}

func (r *RegisterRequest) ToEmail() (user.Email, error) {
	return user.NewEmail(r.Email)
}

func (r *RegisterRequest) ToFullName() (user.FullName, error) {
	return user.NewFullName(r.FullName)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type EmailExistsRequest struct {
	Email string `form:"email" binding:"required,email"`
}
