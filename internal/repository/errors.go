// Package repository holds the in-memory domain collections and keeps
// them synchronized with the durable store. This file defines the
// sentinel errors shared across the repository and workflow layers so
// handlers can translate failure modes into HTTP statuses with
// errors.Is. The original behavior treated unknown ids as silent
// no-ops; the hardened contract here reports them instead, leaving
// state unchanged.
package repository

import "errors"

// ErrNoCurrentUser is returned when an operation needs a registered
// user and none has been created yet. Handlers should translate this
// into an HTTP 401 response.
var ErrNoCurrentUser = errors.New("no current user")

// ErrSkillNotFound is returned when a skill id is not present in the
// targeted list. Handlers should translate this into an HTTP 404
// response.
var ErrSkillNotFound = errors.New("skill not found")

// ErrRequestNotFound is returned when no request exists with the given
// id. Handlers should translate this into an HTTP 404 response.
var ErrRequestNotFound = errors.New("request not found")

// ErrRequestClosed is returned on an attempt to move a terminal
// request to the opposite terminal state, e.g. accepting a rejected
// request. Handlers should translate this into an HTTP 409 response.
var ErrRequestClosed = errors.New("request already closed")

// ErrSessionNotFound is returned when no session exists with the given
// id. Handlers should translate this into an HTTP 404 response.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionClosed is returned on an attempt to complete or cancel a
// session that is already terminal. Handlers should translate this
// into an HTTP 409 response.
var ErrSessionClosed = errors.New("session already closed")
