package models

// Role identifies a user's access level
type Role string

// Role constants
const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User represents an authenticated user
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// DefaultAdmin is the fixed demo admin account
var DefaultAdmin = User{
	ID:     "admin-1",
	Name:   "Admin User",
	Email:  "admin@questscholar.com",
	Role:   RoleAdmin,
	Avatar: "/avatars/admin.png",
}

// DefaultStudent is the fixed demo student account
var DefaultStudent = User{
	ID:     "student-1",
	Name:   "Student User",
	Email:  "student@questscholar.com",
	Role:   RoleStudent,
	Avatar: "/avatars/student.png",
}
