package report

import "fmt"

// ScopeKind tells how a Scope selects expenses.
type ScopeKind int

const (
	// ScopeSelf selects the caller's own expenses by username.
	ScopeSelf ScopeKind = iota
	// ScopeUser selects a specific user's expenses by id.
	ScopeUser
)

// Scope identifies whose expenses a report covers.
type Scope struct {
	Kind     ScopeKind
	Username string
	UserID   int64
}

// SelfScope selects the expenses of the named caller.
func SelfScope(username string) Scope {
	return Scope{Kind: ScopeSelf, Username: username}
}

// UserScope selects the expenses of the user with the given id.
func UserScope(id int64) Scope {
	return Scope{Kind: ScopeUser, UserID: id}
}

func (s Scope) String() string {
	if s.Kind == ScopeUser {
		return fmt.Sprintf("user:%d", s.UserID)
	}
	return "self:" + s.Username
}
