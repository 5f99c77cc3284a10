package models

import "fmt"

// Role is the closed set of account types. Staff status is derived from
// the role at construction time and never set independently.
type Role string

const (
	RoleClient       Role = "client"
	RoleCollaborator Role = "collaborator"
	RoleAdmin        Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting anything
// outside the enumerated set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleCollaborator, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Staff reports whether accounts with this role carry staff privileges.
func (r Role) Staff() bool {
	return r == RoleAdmin
}

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(12);default:'client'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsStaff      bool   `gorm:"default:false" json:"is_staff"`
}

func (User) TableName() string {
	return "users"
}

// NewUser builds an active user record with the staff flag derived from
// the role. The hash must come from auth.HashPassword, never plaintext.
func NewUser(email, passwordHash string, role Role) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		IsStaff:      role.Staff(),
	}
}
