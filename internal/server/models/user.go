// Package models holds the persisted and ephemeral record types the server
// operates on.
package models

import "time"

// User is an identity record. PasswordHash holds a one-way bcrypt hash and is
// never serialized to clients. Users are never hard-deleted; Disabled is the
// soft off-switch (toggled by an administrative path outside this service).
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
}
