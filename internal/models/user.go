package models

// UserRole identifies what a signed-in identity is allowed to see.
type UserRole string

const (
	RolePatient UserRole = "PATIENT" // Regular patient account
	RoleDoctor  UserRole = "DOCTOR"  // Practitioner account
	RoleAdmin   UserRole = "ADMIN"   // Hospital administrator
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User is the public identity shape returned to callers after
// authentication. It never carries credentials.
type User struct {
	ID               string   `json:"id"`                         // Record id, USR- prefixed
	Username         string   `json:"username"`                   // Display name
	Email            string   `json:"email"`                      // Login email
	Role             UserRole `json:"role"`                       // PATIENT, DOCTOR or ADMIN
	IsVerified       bool     `json:"isVerified"`                 // Set by an admin verification
	SecurityQuestion string   `json:"securityQuestion,omitempty"` // Recovery question, shown during account recovery
}

// UserRecord is the stored form of a user, including credentials.
// The fallback store keeps the password in plain text on purpose: it mirrors
// the mock database the product runs on without a backend. The server path
// stores a bcrypt hash instead.
type UserRecord struct {
	User
	Password       string `json:"password" db:"password"`
	SecurityAnswer string `json:"securityAnswer,omitempty" db:"security_answer"`
}

// UserDB maps the users table.
type UserDB struct {
	ID               string `db:"id"`                // Primary key, USR- prefixed
	Username         string `db:"username"`          // Display name
	Email            string `db:"email"`             // Unique, stored lower-cased
	PasswordHash     string `db:"password_hash"`     // bcrypt hash
	Role             string `db:"role"`              // PATIENT, DOCTOR or ADMIN
	IsVerified       bool   `db:"is_verified"`       // Admin verification flag
	SecurityQuestion string `db:"security_question"` // Recovery question
	SecurityAnswer   string `db:"security_answer"`   // Recovery answer, lower-cased and trimmed
}

// Public converts a stored row to the public identity shape.
func (u *UserDB) Public() User {
	return User{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       UserRole(u.Role),
		IsVerified: u.IsVerified,
	}
}
