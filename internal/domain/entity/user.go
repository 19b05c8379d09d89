package entity

import "time"

// User is one account in the demo user store. PasswordHash is a hex-encoded
// SHA-256 digest; this login exists for the demo flow and is not a security
// boundary.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the editable subset of a user account.
type Profile struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}
