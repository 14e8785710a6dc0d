package user

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can approve leave, write reviews
	RoleHRAdmin  Role = "hr_admin" // Full HR back-office access
)

// User is the profile the backend returns on login and the client keeps
// alongside the session token.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// IsManager checks if the user holds an approval-capable role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleHRAdmin
}

// IsHRAdmin checks if the user is an HR administrator.
func (u *User) IsHRAdmin() bool {
	return u.Role == RoleHRAdmin
}

// ValidRole reports whether r is one of the roles the backend understands.
func ValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHRAdmin:
		return true
	}
	return false
}
