package auth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCaller means a token names an account that no longer exists.
var ErrUnknownCaller = errors.New("unknown caller")

// Role is the privilege level attached to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	ID       int64
	Username string
	Role     Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// ParseRole accepts USER or ADMIN in any case. An empty string means USER.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
