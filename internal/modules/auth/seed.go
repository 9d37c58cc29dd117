package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/models"
)

// SystemUserEmail owns events pulled in from the external catalog.
const SystemUserEmail = "ticketmaster@eventmaster.local"

// Seed makes sure the role rows, the bootstrap administrator and the
// import system user exist. It runs on every startup and is idempotent.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger, root config.RootAdmin) error {
	for _, kind := range []models.RoleKind{models.RoleAdmin, models.RoleUser} {
		var role models.Role
		err := db.WithContext(ctx).Where("kind = ?", kind).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.WithContext(ctx).Create(&models.Role{Kind: kind}).Error; err != nil {
				return err
			}
			log.Info("seeded role", zap.String("kind", string(kind)))
			continue
		}
		if err != nil {
			return err
		}
	}

	if root.Email != "" && root.Password != "" {
		if err := ensureUser(ctx, db, log, root.Email, root.Password, models.RoleAdmin); err != nil {
			return err
		}
	}

	// The system user never logs in, its password is random per install.
	return ensureUser(ctx, db, log, SystemUserEmail, randomPassword(), models.RoleUser)
}

func ensureUser(ctx context.Context, db *gorm.DB, log *zap.Logger, email, password string, kind models.RoleKind) error {
	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var role models.Role
	if err := db.WithContext(ctx).Where("kind = ?", kind).First(&role).Error; err != nil {
		return err
	}
	user := models.User{Email: email, Password: password, Roles: []models.Role{role}}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}
	log.Info("seeded user", zap.String("email", email), zap.String("role", string(kind)))
	return nil
}

// SystemUserID returns the id of the import system user.
func SystemUserID(ctx context.Context, db *gorm.DB) (string, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", SystemUserEmail).First(&user).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}
