package models

import "time"

// User is an account row. The learning ledgers themselves live in the
// key-value state store, namespaced by the account ID.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	GuardianEmail string    `json:"guardianEmail,omitempty"` // weekly report recipient
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
