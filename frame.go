// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"context"
	"fmt"
	"strings"
)

// CanonicalFrameID returns the wire form of a frame identifier: the id
// wrapped in vertical bars, which tells the Lisp reader to take the symbol
// verbatim and case-sensitive. Already-wrapped ids pass through unchanged.
func CanonicalFrameID(id string) string {
	if strings.HasPrefix(id, "|") && strings.HasSuffix(id, "|") && len(id) >= 2 {
		return id
	}
	return "|" + id + "|"
}

// frameKey normalizes a frame or slot identifier into the cache key form:
// dashes and dots become underscores, a trailing Lisp predicate marker '?'
// becomes "_p", the vertical-bar delimiters are stripped, and the result is
// lower-cased. The canonical |...| form is kept separately for the wire.
func frameKey(id string) string {
	r := strings.NewReplacer("-", "_", ".", "_", "?", "_p", "|", "")
	return strings.ToLower(r.Replace(id))
}

// Frame is a local handle on one Pathway Tools frame, either a class (e.g.
// Reactions) or an instance (e.g. RXN-9000). A Frame starts out holding only
// its id; the first slot access transfers the whole frame from the server and
// caches it. Slots are read-only through this handle: mutations go through
// PGDB.PutSlotValue / PutSlotValues, and such remote changes are not
// propagated back into already-cached frames.
type Frame struct {
	frameid  string // canonical |...| form
	pgdb     *PGDB
	isClass  bool
	gotFrame bool
	slots    map[string]any

	// Instance frames of a class, in server order. Only set for class frames.
	instances []*Frame
}

// NewFrame creates a handle for frameid bound to pgdb and registers it in the
// PGDB's frame cache. No data is fetched; the frame is assumed to exist
// remotely, and the first slot access will transfer it.
func NewFrame(frameid string, pgdb *PGDB, isClass bool) *Frame {
	f := &Frame{
		frameid: CanonicalFrameID(frameid),
		pgdb:    pgdb,
		isClass: isClass,
		slots:   make(map[string]any),
	}
	pgdb.frames[frameKey(frameid)] = f
	return f
}

// FrameID returns the canonical |...| identifier.
func (f *Frame) FrameID() string { return f.frameid }

// PGDB returns the owning database handle.
func (f *Frame) PGDB() *PGDB { return f.pgdb }

// IsClass reports whether this frame represents a class rather than an
// instance.
func (f *Frame) IsClass() bool { return f.isClass }

// Fetched reports whether the full slot data has been transferred.
func (f *Frame) Fetched() bool { return f.gotFrame }

// Fetch transfers all slots and their values for this frame from the server
// and stores them locally. For a class frame the instances are not fetched
// here; see PGDB.GetClassData.
func (f *Frame) Fetch(ctx context.Context) error {
	obj, err := f.pgdb.FnCall(ctx, "get-frame-object", []any{f}, nil)
	if err != nil {
		return err
	}
	slots, ok := obj.(map[string]any)
	if !ok || len(slots) == 0 {
		return fmt.Errorf("%w: %s in %s", ErrFrameMissing, f.frameid, f.pgdb.orgid)
	}
	f.gotFrame = true
	for slot, val := range slots {
		f.slots[frameKey(slot)] = val
	}
	return nil
}

// Get returns the value of the named slot. Slot names are normalized, so
// "common-name", "COMMON-NAME" and "common_name" all address the same slot.
// If the slot is absent and the frame has not been fetched yet, the whole
// frame is transferred once; if the slot is still absent afterwards (or the
// frame was already fetched), Get returns nil with no error. A missing slot
// is an expected outcome, not a failure.
func (f *Frame) Get(ctx context.Context, slot string) (any, error) {
	key := frameKey(slot)
	if key == "instances" && f.instances != nil {
		return f.instances, nil
	}
	if v, ok := f.slots[key]; ok {
		return v, nil
	}
	if f.gotFrame {
		return nil, nil
	}
	if err := f.Fetch(ctx); err != nil {
		return nil, err
	}
	return f.slots[key], nil
}

// Set rejects all slot mutation. Frames are read-only local views.
func (f *Frame) Set(slot string, value any) error {
	return &SlotAccessError{FrameID: f.frameid, Slot: slot}
}

// Instances returns the instance frames of a class frame, or nil for an
// instance frame.
func (f *Frame) Instances() []*Frame { return f.instances }

// Index returns the i-th instance of a class frame.
func (f *Frame) Index(i int) (*Frame, error) {
	if f.instances == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexable, f.frameid)
	}
	if i < 0 || i >= len(f.instances) {
		return nil, fmt.Errorf("gocyc: index %d out of range for class %s with %d instances", i, f.frameid, len(f.instances))
	}
	return f.instances[i], nil
}

// Slice returns instances i..j (half-open) of a class frame.
func (f *Frame) Slice(i, j int) ([]*Frame, error) {
	if f.instances == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexable, f.frameid)
	}
	if i < 0 || j > len(f.instances) || i > j {
		return nil, fmt.Errorf("gocyc: slice [%d:%d] out of range for class %s with %d instances", i, j, f.frameid, len(f.instances))
	}
	return f.instances[i:j], nil
}

// Len returns the number of known instances of a class frame, zero for an
// instance frame.
func (f *Frame) Len() int { return len(f.instances) }

// Equal reports structural equality: same owning PGDB orgid and same
// canonical frame id. Two distinct handles over the same remote frame compare
// equal.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	return f.pgdb.orgid == other.pgdb.orgid && f.frameid == other.frameid
}

// MatchesID reports whether this frame's canonical id matches the given id
// after canonicalization.
func (f *Frame) MatchesID(id string) bool {
	return f.frameid == CanonicalFrameID(id)
}

func (f *Frame) String() string {
	if f.isClass {
		return fmt.Sprintf("<Frame class %s currently with %d instances (%s)>", f.frameid, len(f.instances), f.pgdb.orgid)
	}
	return fmt.Sprintf("<Frame instance %s (%s)>", f.frameid, f.pgdb.orgid)
}
