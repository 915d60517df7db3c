// Package http implements the REST transport of the user-keeper API.
//
// It wires the chi router, the request handlers of the /api endpoints and
// the middleware chain: panic recovery, trace ids, access logging, request
// timeouts and bearer-token authentication. Every handler writes exactly one
// audit record through [service.AuditService] before it responds.
package http
