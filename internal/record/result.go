// Package record holds the guarded mutable records at the heart of the
// application: small named entities whose numeric state can grow freely
// but can only shrink while it stays at or above zero.
//
// Mutations never print and never panic. Every operation returns a
// Result so the caller can branch on "applied" vs "rejected" without
// comparing state before and after.
package record

import (
	"errors"
	"fmt"
)

// ErrRejected is matched (via errors.Is) by every error produced from a
// rejected Result.
var ErrRejected = errors.New("cannot perform operation")

// Status is the outcome of a guarded mutation.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusRejected Status = "rejected"
)

// Result describes what a mutation did. Label names the value that was
// touched ("balance", "speed"). Before and After are the state on either
// side of the call; for a rejection they are equal.
type Result struct {
	Label  string
	Status Status
	Reason string
	Before int64
	After  int64
}

// Applied reports whether the state was changed.
func (r Result) Applied() bool {
	return r.Status == StatusApplied
}

// Notice renders the result as a human-readable status line, e.g.
//
//	new balance: 100
//	cannot perform operation: insufficient funds
func (r Result) Notice() string {
	if r.Applied() {
		return fmt.Sprintf("new %s: %d", r.Label, r.After)
	}
	return fmt.Sprintf("%s: %s", ErrRejected, r.Reason)
}

// Err converts a rejection into an error for callers that prefer the
// error channel. It returns nil for applied results.
func (r Result) Err() error {
	if r.Applied() {
		return nil
	}
	return &RejectedError{Reason: r.Reason, Value: r.Before}
}

// RejectedError carries the reason a guarded mutation was refused.
type RejectedError struct {
	Reason string
	Value  int64
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s (current value %d)", ErrRejected, e.Reason, e.Value)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }
