package user

import (
	"errors"
	"time"

	"github.com/eventmaster/core/internal/models"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

var errUserNotFound = errors.New("user not found")

func toResponse(u *models.User) userResponse {
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
