package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email, compared case-sensitively
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`             // Display name
	Phone        *string   `json:"phone,omitempty" db:"phone"` // Optional phone number
	IsActive     bool      `json:"isActive" db:"is_active"`    // Active flag
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`  // Last update timestamp
}

// CreateUserInput carries the fields accepted on registration.
type CreateUserInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

// UpdateUserInput carries a partial user update. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
