package model

// Scope carries the caller identity resolved by the auth layer in front of
// this service.
type Scope struct {
	UserID        string
	Permissions   []string
	Authenticated bool
}

// HasPermission reports whether the scope was granted perm.
func (s Scope) HasPermission(perm string) bool {
	for _, p := range s.Permissions {
		if p == perm || p == "*" {
			return true
		}
	}
	return false
}
