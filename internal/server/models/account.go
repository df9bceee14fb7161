// Package models holds the server-side data types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// Account is a row of the account table. Password always holds a bcrypt
// hash, never the plaintext.
type Account struct {
	Email    string
	Password string
}

// Session is the outcome of a successful sign-in: the signed token that goes
// into the jwt-auth cookie and the moment it stops being valid.
type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}
