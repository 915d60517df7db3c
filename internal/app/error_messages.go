// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the user-keeper API puts
// into response bodies and audit log entries.
//
// Format verbs (%d, %s) are filled in by the HTTP handlers.
package app

// Outcome messages of the user endpoints.
const (
	MsgUserNotFound = "User not found!"

	// MsgUserUpdated takes the id of the updated user.
	MsgUserUpdated = "User with Id:%d updated!"

	MsgUserSaved    = "User saved!"
	MsgUserNotSaved = "User was not saved!"

	// MsgUserDeleted takes the id of the deleted user.
	MsgUserDeleted    = "User with Id:%d was deleted!"
	MsgUserNotDeleted = "User not deleted!"

	// MsgPasswordChanged and MsgPasswordNotChanged take the username.
	MsgPasswordChanged    = "Password from username %s was successfully changed!"
	MsgPasswordNotChanged = "Password from username %s was not changed!"
)

// Transport-level messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidUserID is returned when the {id} path segment is not an integer.
	MsgInvalidUserID = "Invalid user id"

	MsgUnauthorized            = "Unauthorized"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRouteNotFound answers unknown paths and unsupported methods alike.
	MsgRouteNotFound = "Route not found"
)
