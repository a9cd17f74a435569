// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrMismatchedPassword = errors.New("password does not match hash")
	ErrUnknownHashFormat  = errors.New("unknown password hash format")
	ErrMalformedHash      = errors.New("malformed password hash")
)
