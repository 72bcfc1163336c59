// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"errors"
	"fmt"
)

var (
	// ErrFrameMissing reports that a full-record fetch came back empty for a
	// frame that was expected to exist.
	ErrFrameMissing = errors.New("gocyc: frame not found in PGDB")

	// ErrNotIndexable reports an Index or Slice call on a frame that holds no
	// instances collection (an instance frame rather than a class frame).
	ErrNotIndexable = errors.New("gocyc: frame has no instances to index")
)

// EncodeError reports a value with no wire representation. This is always a
// caller bug, never a transient condition.
type EncodeError struct {
	Value any
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("gocyc: cannot encode value of type %T (%v)", e.Value, e.Value)
}

// ConnError reports that the socket to the Pathway Tools server could not be
// opened, broke mid-exchange, or timed out. A connect-time failure is safe to
// retry by the caller; a mid-exchange break is not, since the query may have
// had side effects.
type ConnError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("gocyc: connection to Pathway Tools at %s:%d failed: %v (is it running with -python?)", e.Host, e.Port, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// ProtocolError reports a malformed response frame or a payload that could
// not be decoded as JSON.
type ProtocolError struct {
	Msg string
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gocyc: protocol error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("gocyc: protocol error: %s", e.Msg)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// RemoteError reports that the Lisp evaluator inside Pathway Tools returned
// an :error marker. Diagnostic carries the raw server text. Retrying will
// reproduce the same condition, so nothing in this package retries it.
type RemoteError struct {
	Diagnostic string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("gocyc: Pathway Tools reported an internal error: %s", e.Diagnostic)
}

// ConstructError reports that a PGDB handle could not be created, usually
// because the orgid is unknown to the running server.
type ConstructError struct {
	OrgID string
	Err   error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("gocyc: cannot select organism %q: %v", e.OrgID, e.Err)
}

func (e *ConstructError) Unwrap() error { return e.Err }

// SlotAccessError reports an attempted local mutation of a frame slot. Frames
// are read-only views; changes go through PGDB.PutSlotValue or
// PGDB.PutSlotValues and are not propagated back into cached frames.
type SlotAccessError struct {
	FrameID string
	Slot    string
}

func (e *SlotAccessError) Error() string {
	return fmt.Sprintf("gocyc: slots of frame %s are read-only (slot %q); use PutSlotValue or PutSlotValues on the PGDB", e.FrameID, e.Slot)
}

// IsRemoteError reports whether err carries a server-side :error diagnostic.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsConnError reports whether err is a connection-level failure.
func IsConnError(err error) bool {
	var ce *ConnError
	return errors.As(err, &ce)
}
