// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-management request models before the
// service layer acts on them.
//
// A Validator receives the context, the value to check and an optional list
// of field names. When field names are given only those fields are checked;
// otherwise every field the model requires is checked.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(ctx context.Context, obj any, fields ...string) error
}
