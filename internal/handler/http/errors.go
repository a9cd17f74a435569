// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding inbound requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected model.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidUserID is returned when the user id in the path or query is
	// missing or not a positive integer.
	ErrInvalidUserID = errors.New("user_id must be a positive integer")

	// ErrInvalidMultipart is returned when POST /upload is not a readable
	// multipart form.
	ErrInvalidMultipart = errors.New("invalid multipart form")

	// ErrUploadTooLarge is returned when POST /upload exceeds the configured
	// body limit.
	ErrUploadTooLarge = errors.New("upload is too large")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
