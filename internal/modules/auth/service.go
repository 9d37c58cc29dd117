package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
	sessionpkg "github.com/eventmaster/core/internal/pkg/session"
)

type Service struct {
	db       *gorm.DB
	sessions *sessionpkg.Store
}

func NewService(db *gorm.DB, sessions *sessionpkg.Store) *Service {
	return &Service{db: db, sessions: sessions}
}

// Login verifies the credentials and opens a new session. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, dto *LoginDTO, ip string) (*models.Session, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Roles").Where("email = ?", dto.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, errInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if !user.CheckPassword(dto.Password) {
		return nil, nil, errInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, ip)
	if err != nil {
		return nil, nil, err
	}
	return sess, &user, nil
}

// Logout revokes the session behind the token. The cookie alone is not
// trusted, the stored row is removed so the token cannot be replayed.
func (s *Service) Logout(ctx context.Context, tok string) error {
	return s.sessions.Delete(ctx, tok)
}

// Register creates a regular user account.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.User, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).Where("kind = ?", models.RoleUser).First(&role).Error; err != nil {
		return nil, err
	}

	user := models.User{
		Email:    dto.Email,
		Password: dto.Password,
		Roles:    []models.Role{role},
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}
