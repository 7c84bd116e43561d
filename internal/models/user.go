package models

// User is a registered account. The plaintext password is never stored,
// only its bcrypt hash.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
