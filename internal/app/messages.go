// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into HTTP
// response bodies, kept in one place so the wording stays consistent.
package app

const (
	// MsgUserRegistered acknowledges POST /register.
	MsgUserRegistered = "user registered"

	// MsgLoginSuccessful acknowledges POST /login.
	MsgLoginSuccessful = "login successful"

	// MsgUserUpdated acknowledges PATCH /users/{user_id}.
	MsgUserUpdated = "user updated"

	// MsgUserDeleted acknowledges DELETE /users/{user_id}.
	MsgUserDeleted = "user deleted"

	// MsgImageUploaded acknowledges POST /upload.
	MsgImageUploaded = "image uploaded"

	// MsgNotFound is the detail for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgInvalidGzipBody is the detail for a request whose body claims gzip
	// encoding but cannot be decompressed.
	MsgInvalidGzipBody = "invalid gzip body"
)
