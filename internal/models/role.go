package models

// RoleKind enumerates the roles the application knows about. Roles are
// seeded at startup and assigned by kind, not by free-form name.
type RoleKind string

const (
	RoleAdmin RoleKind = "admin"
	RoleUser  RoleKind = "user"
)

func (k RoleKind) Valid() bool {
	return k == RoleAdmin || k == RoleUser
}

type Role struct {
	Base
	Kind RoleKind `json:"kind" gorm:"type:varchar(32);uniqueIndex"`
}

func (Role) TableName() string { return "roles" }
