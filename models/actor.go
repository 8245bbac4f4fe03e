package models

// Actor is the acting identity on whose behalf an operation runs. It is
// passed explicitly into service operations instead of living in request
// globals, so authorization decisions are visible at every call site.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor holds the administrative role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
