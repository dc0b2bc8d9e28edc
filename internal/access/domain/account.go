package domain

import "time"

// Account is one authenticated identity. Email is authoritative and
// immutable: it is always set from the redeemed invite's intended email,
// never from signup input. A protected account is created once at
// bootstrap and can never lose admin status, which guarantees the system
// always retains at least one administrator.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string // argon2 encoded
	IsAdmin      bool
	IsProtected  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Privilege is the result of a fresh authorization resolution for a caller.
type Privilege struct {
	IsAdmin     bool
	IsProtected bool
}
