package service

import "errors"

// Business errors. Handlers map these to HTTP status codes with errors.Is;
// anything else that escapes a service is a storage or transport failure and
// surfaces as a 5xx.
var (
	ErrNotFound         = errors.New("record not found")
	ErrRoleConflict     = errors.New("both profiles hold the same role")
	ErrSelfInvite       = errors.New("cannot invite yourself")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidRole      = errors.New("role must be leader or learner")
	ErrProfileExists    = errors.New("profile already exists for this user")

	// ErrCovenantNotInitialized means a learner asked for the covenant
	// before the leader's first visit created it.
	ErrCovenantNotInitialized = errors.New("covenant not yet created by the leader")

	// ErrStaleWrite means an optimistic-concurrency guard failed; the
	// caller should re-read and retry.
	ErrStaleWrite = errors.New("record was changed concurrently, retry")

	// ErrEmptyMessage rejects whitespace-only chat messages.
	ErrEmptyMessage = errors.New("message content is empty")

	// ErrNotPending rejects accept/decline on a connection that already
	// settled in the other terminal state.
	ErrNotPending = errors.New("connection is no longer pending")

	// ErrConnectionNotActive guards operations that require an accepted
	// pairing, such as sending messages.
	ErrConnectionNotActive = errors.New("connection is not active")
)
