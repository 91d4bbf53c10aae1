package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	Username     string    `json:"username" db:"username"` // Primary key
	PasswordHash string    `json:"-" db:"password_hash"`   // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// User is the public view of an account.
type User struct {
	Username string `json:"username"`
}
