// Package usecase implements the business logic for the accounts feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when no user matches the given username or ID.
	ErrAccountNotFound = errors.New("user not found")

	// ErrDuplicateAccount is returned when an insert or update would violate the
	// uniqueness of username or email.
	ErrDuplicateAccount = errors.New("username or email already exists")

	// ErrPasswordMismatch is returned when password and confirmPassword differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned when password verification fails.
	// The message never reveals whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoAccounts is returned when delete-all finds nothing to delete.
	ErrNoAccounts = errors.New("no users to delete")
)
