// Package entity defines the domain entities for the accounts feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains the credentials and metadata for account management.
type User struct {
	// ID is the unique identifier for the user, assigned by the database.
	ID uint `gorm:"primaryKey"`

	// Username is the user's login name.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
