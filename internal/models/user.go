package models

import (
	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Base
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	Roles    []Role `json:"roles" gorm:"many2many:user_roles"`
}

func (User) TableName() string { return "users" }

// BeforeCreate hashes the password before the row is written. Passwords
// are never persisted in plain text.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if err := u.Base.BeforeCreate(tx); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) HasRole(kind RoleKind) bool {
	for _, r := range u.Roles {
		if r.Kind == kind {
			return true
		}
	}
	return false
}
