// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests before any outbound call is
// made.
//
// Field rules are declared as `validate` struct tags on the request models
// and enforced with go-playground/validator; messages use the JSON field
// names. Cross-field rules (password confirmation, login identifier aliases)
// are applied on top.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
