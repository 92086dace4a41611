package models

import "strings"

// Role is the closed set of user roles. Stored lowercase; parsing is
// case-insensitive so legacy rows ("Admin", "USER") still resolve.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a raw role value. Unknown or empty values fall
// back to RoleUser, never to a privileged role.
func ParseRole(s string) Role {
	if strings.EqualFold(s, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) String() string {
	return string(r)
}
