package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the service
var (
	ErrNotFound             = errors.New("record not found")          // Reference to a nonexistent entity
	ErrAuthenticationFailed = errors.New("invalid login or password") // Same error for unknown login and bad password
	ErrAuthorizationDenied  = errors.New("access denied")             // Role mismatch on a protected operation
)

// ValidationError reports a malformed or out-of-range input field
type ValidationError struct {
	Field  string // Offending field name
	Reason string // Human-readable reason
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// StateError reports an illegal lifecycle transition or a mutation of a
// closed (delivered/cancelled) order
type StateError struct {
	Op   string      // Rejected operation
	From OrderStatus // Status the order was in
	To   OrderStatus // Requested status; empty for item mutations
}

func (e *StateError) Error() string {
	if e.To != "" {
		return fmt.Sprintf("%s: illegal transition %s -> %s", e.Op, e.From, e.To)
	}
	return fmt.Sprintf("%s: order is %s", e.Op, e.From)
}

// StorageError wraps a backing-store failure. Surfaced to the caller as a
// generic failure; the wrapped driver error stays in the logs only.
type StorageError struct {
	Op  string // Failed operation
	Err error  // Driver error
}

func (e *StorageError) Error() string {
	return e.Op + ": storage failure: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
