package domain

import (
	"net/mail"
	"strings"
	"time"
)

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleFaculty UserRole = "faculty"
	UserRoleDonor   UserRole = "donor"
	UserRoleAdmin   UserRole = "admin"
)

// User represents an account within the platform.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         UserRole
	StudentID    string
	Department   string
	ProfileImage string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
}

// IsAdmin reports whether the user has administrative rights.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// ValidEmail accepts bare addresses whose domain has at least one dot;
// display names and angle brackets are rejected.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
