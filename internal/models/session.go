package models

import "time"

// Session is a server-side login session. The token column stores the
// opaque value handed to the client in the session cookie.
type Session struct {
	Base
	Token     string    `json:"-" gorm:"type:varchar(128);uniqueIndex" validate:"required"`
	UserID    string    `json:"userId" gorm:"type:char(36);index" validate:"required"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	IP        string    `json:"ip" gorm:"type:varchar(45)" validate:"required"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
