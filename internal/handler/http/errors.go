// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware, produced while parsing
// the "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header names the Bearer scheme but
	// carries no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request parsing errors.
var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidPageParam = errors.New("invalid page parameter")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
)
