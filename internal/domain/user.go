package domain

// RoleAdmin is the role the session-check principal must carry for the
// admin console to authenticate.
const RoleAdmin = "admin"

// User is a store account as returned by the users and admin-auth endpoints.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
}

// IsAdmin reports whether the user carries the administrative role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
