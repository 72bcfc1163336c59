// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"context"
	"errors"
	"fmt"
)

// PGDB is a handle on one Pathway/Genome Database inside a running Pathway
// Tools server, selected by its orgid (e.g. "ecoli", "meta"). Construction
// validates the orgid against the server; a handle that exists is always
// usable.
//
// The handle owns a cache of every Frame materialized through it, keyed by
// normalized id. Within one PGDB the same id always resolves to the same
// *Frame, so pointer identity can be used for deduplication on top of the
// structural Frame.Equal. The cache is not synchronized: this client is built
// for sequential, interactive use, and concurrent callers must serialize
// access themselves.
type PGDB struct {
	orgid  string
	cfg    Config
	frames map[string]*Frame
	values map[string]any
}

// SelectOrganism creates a PGDB handle for orgid after confirming with the
// server that the orgid exists. On failure no usable handle is returned.
func SelectOrganism(ctx context.Context, orgid string, cfg Config) (*PGDB, error) {
	p := &PGDB{
		orgid:  orgid,
		cfg:    cfg,
		frames: make(map[string]*Frame),
		values: make(map[string]any),
	}
	r, err := SendQuery(ctx, cfg, "(orgid-exist-p '"+orgid+")")
	if err != nil {
		return nil, &ConstructError{OrgID: orgid, Err: err}
	}
	if !truthy(r) {
		return nil, &ConstructError{OrgID: orgid, Err: errors.New("unknown orgid; use AllOrgids to list the known ones")}
	}
	return p, nil
}

// truthy maps the server's nil/empty-list conventions onto Go: JSON null,
// false and an empty array all read as false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case []any:
		return len(x) > 0
	default:
		return true
	}
}

// OrgID returns the organism identifier this handle is bound to.
func (p *PGDB) OrgID() string { return p.orgid }

// Config returns the connection configuration used by this handle.
func (p *PGDB) Config() Config { return p.cfg }

// NumFrames returns the number of frames currently cached on this handle.
func (p *PGDB) NumFrames() int { return len(p.frames) }

// Equal reports whether two handles address the same PGDB; the orgid alone
// determines identity.
func (p *PGDB) Equal(other *PGDB) bool {
	return other != nil && p.orgid == other.orgid
}

func (p *PGDB) String() string {
	return fmt.Sprintf("<PGDB %s, currently has %d frames>", p.orgid, len(p.frames))
}

// Eval evaluates query in the context of this PGDB by wrapping it in the
// server's with-organism scoping form.
func (p *PGDB) Eval(ctx context.Context, query string) (any, error) {
	scoped := "(with-organism (:org-id '" + p.orgid + ") " + query + ")"
	return SendQuery(ctx, p.cfg, scoped)
}

// FnCall builds a remote function call from fn, args and kwargs and evaluates
// it in this PGDB. If the remote function returns multiple values, the server
// flattens them into a list before this layer sees them.
func (p *PGDB) FnCall(ctx context.Context, fn string, args []any, kwargs Kwargs) (any, error) {
	call, err := BuildCall(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return p.Eval(ctx, call)
}

// FnCallBool is FnCall for remote functions returning a generalized boolean:
// nil and the empty list both read as false.
func (p *PGDB) FnCallBool(ctx context.Context, fn string, args []any, kwargs Kwargs) (any, error) {
	r, err := p.FnCall(ctx, fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	if !truthy(r) {
		return false, nil
	}
	return r, nil
}

// FnCallList is FnCall for remote functions returning a list: nil and false
// both read as the empty list, and a bare scalar is wrapped.
func (p *PGDB) FnCallList(ctx context.Context, fn string, args []any, kwargs Kwargs) ([]any, error) {
	r, err := p.FnCall(ctx, fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	switch x := r.(type) {
	case nil:
		return nil, nil
	case bool:
		if !x {
			return nil, nil
		}
		return []any{x}, nil
	case []any:
		return x, nil
	default:
		return []any{x}, nil
	}
}

// Bind stores a value in the handle's local cache under the normalized name.
// Frames land in the frame cache, anything else in the value cache. Resolve
// consults both before going to the network.
func (p *PGDB) Bind(name string, value any) {
	key := frameKey(name)
	if f, ok := value.(*Frame); ok {
		p.frames[key] = f
		return
	}
	p.values[key] = value
}

// Frame returns the cached frame for name, if any, without touching the
// network.
func (p *PGDB) Frame(name string) (*Frame, bool) {
	f, ok := p.frames[frameKey(name)]
	return f, ok
}

// Resolve is the dynamic lookup behind "give me whatever this name means in
// the PGDB". In order:
//
//  1. a locally bound value under the normalized name,
//  2. an already-cached frame (no network: a name resolves at most once),
//  3. a class known to the server: its slots and instance list are fetched
//     and a class frame is built, with one lazy id-only frame per instance,
//  4. an instance known to the server: fetched in full,
//  5. otherwise (nil, nil): an unknown name is an expected miss, not an
//     error. Probing is common and must stay silent.
//
// The server is free to repair the name (case, dashes vs underscores), so
// the frame created may carry a different id than the name asked for.
func (p *PGDB) Resolve(ctx context.Context, name string) (any, error) {
	key := frameKey(name)
	if v, ok := p.values[key]; ok {
		return v, nil
	}
	if f, ok := p.frames[key]; ok {
		return f, nil
	}
	className, err := p.IsAClassName(ctx, name)
	if err != nil {
		return nil, err
	}
	if className != "" {
		return p.GetClassData(ctx, className, false)
	}
	instanceName, err := p.IsAnInstanceName(ctx, name)
	if err != nil {
		return nil, err
	}
	if instanceName != "" {
		f := NewFrame(instanceName, p, false)
		if err := f.Fetch(ctx); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, nil
}

// IsAClassName asks the server whether name denotes a class. The returned
// string is the real class name, which may differ from name (the server
// repairs case and underscores); empty means unknown.
func (p *PGDB) IsAClassName(ctx context.Context, name string) (string, error) {
	r, err := p.FnCallBool(ctx, "class-name-p", []any{Symbol(name)}, nil)
	if err != nil {
		return "", err
	}
	if s, ok := r.(string); ok {
		return s, nil
	}
	return "", nil
}

// IsAnInstanceName asks the server whether name denotes an instance frame,
// returning the real frame id or empty.
func (p *PGDB) IsAnInstanceName(ctx context.Context, name string) (string, error) {
	r, err := p.FnCallBool(ctx, "frameid-instance-p", []any{Symbol(name)}, nil)
	if err != nil {
		return "", err
	}
	if s, ok := r.(string); ok {
		return s, nil
	}
	return "", nil
}

// GetClassData fetches the class frame for className: its own slots, plus the
// list of its instances. The instance frames are created id-only and fetch
// themselves lazily, unless withInstanceData is set, in which case all
// instance data is transferred in one bulk call.
func (p *PGDB) GetClassData(ctx context.Context, className string, withInstanceData bool) (*Frame, error) {
	f := NewFrame(className, p, true)
	if err := f.Fetch(ctx); err != nil {
		return nil, err
	}
	frameids, err := p.FnCallList(ctx, "get-class", []any{f}, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(frameids))
	for _, id := range frameids {
		if s, ok := id.(string); ok {
			ids = append(ids, s)
		}
	}
	if withInstanceData {
		instances, err := p.GetFrameObjects(ctx, ids)
		if err != nil {
			return nil, err
		}
		f.instances = instances
	} else {
		instances := make([]*Frame, len(ids))
		for i, id := range ids {
			instances[i] = p.reuseOrCreate(id)
		}
		f.instances = instances
	}
	return f, nil
}

// reuseOrCreate returns the cached frame for frameid or registers a fresh
// id-only one.
func (p *PGDB) reuseOrCreate(frameid string) *Frame {
	if f, ok := p.frames[frameKey(frameid)]; ok {
		return f
	}
	return NewFrame(frameid, p, false)
}

// GetFrameObjects bulk-fetches the full slot data of every given frame id in
// a single round trip, far cheaper than fetching them one by one. Cached
// frames are reused and overwritten; new ones are created and cached. Every
// returned frame is fully fetched.
func (p *PGDB) GetFrameObjects(ctx context.Context, frameids []string) ([]*Frame, error) {
	ids := make([]any, len(frameids))
	for i, id := range frameids {
		ids[i] = CanonicalFrameID(id)
	}
	r, err := p.FnCall(ctx, "get-frame-objects", []any{ids}, nil)
	if err != nil {
		return nil, err
	}
	objects, ok := r.(map[string]any)
	if !ok {
		return nil, &ProtocolError{Msg: fmt.Sprintf("get-frame-objects returned %T, want an id-to-slots map", r)}
	}
	frames := make([]*Frame, 0, len(objects))
	for frameid, slotData := range objects {
		f := p.reuseOrCreate(frameid)
		f.gotFrame = true
		if slots, ok := slotData.(map[string]any); ok {
			for slot, val := range slots {
				f.slots[frameKey(slot)] = val
			}
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// GetClassAllInstances returns the frame ids of all instances of className.
// No frames are created; use Resolve or GetClassData for that.
func (p *PGDB) GetClassAllInstances(ctx context.Context, className string) ([]any, error) {
	return p.FnCallList(ctx, "gcai", []any{Symbol(className)}, nil)
}

// MajorClasses resolves the Reactions, Pathways, Genes, Compounds and
// Proteins classes and bulk-fetches the data of every instance. This
// transfers tens of thousands of frames and can take a long time.
func (p *PGDB) MajorClasses(ctx context.Context) error {
	for _, class := range []string{"Reactions", "Pathways", "Genes", "Compounds", "Proteins"} {
		v, err := p.Resolve(ctx, class)
		if err != nil {
			return err
		}
		f, ok := v.(*Frame)
		if !ok {
			return fmt.Errorf("gocyc: class %s not found in %s", class, p.orgid)
		}
		ids := make([]string, len(f.instances))
		for i, inst := range f.instances {
			ids[i] = inst.frameid
		}
		if _, err := p.GetFrameObjects(ctx, ids); err != nil {
			return err
		}
	}
	return nil
}
