package models

// User is one account of the user directory. Usernames are unique
// case-insensitively. Only the bcrypt hash of the password is stored.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
