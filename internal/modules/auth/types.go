package auth

import (
	"errors"
	"time"

	"github.com/eventmaster/core/internal/models"
)

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errDuplicateEmail     = errors.New("email already registered")
)

func toUserResponse(u *models.User) userResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r.Kind)
	}
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
