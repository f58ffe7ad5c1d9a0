package domain

// Identity is the authenticated principal for one browsing session.
// At most one identity is live per session; a nil *Identity means anonymous.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the identity holds the admin role.
// Safe to call on a nil receiver.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role.IsAdmin()
}

// HasRole reports whether the identity holds the given role.
// Safe to call on a nil receiver.
func (i *Identity) HasRole(r Role) bool {
	return i != nil && i.Role == r
}
