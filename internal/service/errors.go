package service

import "errors"

var (
	// ErrInvalidCredentials covers unknown identifiers, wrong passwords and
	// unusable stored hashes alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoPhotosFound    = errors.New("no photos found")

	ErrTokenSigningDisabled = errors.New("token signing is disabled")
	ErrTokenCreationFailed  = errors.New("token creation failed")
	ErrInvalidToken         = errors.New("invalid token")

	// ErrTokenSubjectMismatch is returned when a valid token belongs to a
	// different user than the one addressed.
	ErrTokenSubjectMismatch = errors.New("token does not belong to this user")
)
