package models

// User roles. Login requires the selected role to match the stored one.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
)

// User is a staff account. PasswordHash is never serialized.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	FullName     string `json:"full_name" db:"full_name"`
	CreatedAt    string `json:"created_at,omitempty" db:"created_at"`
}
