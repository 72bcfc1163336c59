// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import "context"

// frameRef prepares a frame-designating argument for the wire: a bare string
// becomes an evaluated symbol (the server resolves it to a frame inside the
// scoped call), while frames and everything else pass through to the encoder.
func frameRef(v any) any {
	if s, ok := v.(string); ok {
		return Symbol(s)
	}
	return v
}

// GetSlotValues returns the values of the given slot of a frame. Values can
// be frame ids, booleans, strings or numbers.
func (p *PGDB) GetSlotValues(ctx context.Context, frame any, slot string) ([]any, error) {
	return p.FnCallList(ctx, "get-slot-values", []any{frameRef(frame), Symbol(slot)}, nil)
}

// GetSlotValue returns the single value of the given slot of a frame.
func (p *PGDB) GetSlotValue(ctx context.Context, frame any, slot string) (any, error) {
	return p.FnCall(ctx, "get-slot-value", []any{frameRef(frame), Symbol(slot)}, nil)
}

// PutSlotValues replaces the values of a slot with vals on the server side.
// Cached frames are NOT updated; this call is for its remote effect only.
func (p *PGDB) PutSlotValues(ctx context.Context, frame any, slot string, vals []any) (any, error) {
	return p.FnCall(ctx, "put-slot-values", []any{frameRef(frame), Symbol(slot), vals}, nil)
}

// PutSlotValue replaces the single value of a slot on the server side.
// Cached frames are NOT updated; this call is for its remote effect only.
func (p *PGDB) PutSlotValue(ctx context.Context, frame any, slot string, val any) (any, error) {
	return p.FnCall(ctx, "put-slot-value", []any{frameRef(frame), Symbol(slot), val}, nil)
}
