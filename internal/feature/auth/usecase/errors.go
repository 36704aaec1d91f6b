// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrDuplicateAccount is returned when registering with an email that
	// already has a credential record.
	ErrDuplicateAccount = errors.New("account with this email already exists")

	// ErrInvalidCredentials is returned when no credential record matches the
	// given email/password pair. It is deliberately generic so callers cannot
	// tell whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoActiveSession is returned when an operation that requires a logged-in
	// user is attempted without one. The UI is expected to never reach this
	// state, so callers should treat it as a contract violation.
	ErrNoActiveSession = errors.New("no active session")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
