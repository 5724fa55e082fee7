package models

// Role is the closed set of permissions a user can hold.
type Role string

const (
	// RoleViewer may read the directory.
	RoleViewer Role = "viewer"
	// RoleEditor may additionally create, update, delete and import companies.
	RoleEditor Role = "editor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor:
		return true
	default:
		return false
	}
}

// CanEdit reports whether the role grants write access to companies.
func (r Role) CanEdit() bool {
	switch r {
	case RoleEditor:
		return true
	case RoleViewer:
		return false
	default:
		return false
	}
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Role defines what the user is allowed to do.
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
