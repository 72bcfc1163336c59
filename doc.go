// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gocyc is a Go client for the Pathway Tools Lisp server, giving
// programs access to Pathway/Genome Databases (PGDBs) as if their frames were
// in-process values.
//
// Pathway Tools must be running with at least the -python option so that its
// evaluation socket is listening (port 5008 by default):
//
//	./pathway-tools -lisp -python
//
// # Usage
//
// Select an organism, then resolve names against it:
//
//	cfg := gocyc.DefaultConfig()
//	meta, err := gocyc.SelectOrganism(ctx, "meta", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Resolve a class: one frame per instance, created lazily.
//	v, err := meta.Resolve(ctx, "Reactions")
//	reactions := v.(*gocyc.Frame)
//	first, _ := reactions.Index(0)
//
//	// Resolve an instance: fetched in full.
//	v, err = meta.Resolve(ctx, "TRP")
//	trp := v.(*gocyc.Frame)
//	name, _ := trp.Get(ctx, "common-name")
//
// A name that is neither a class nor an instance resolves to (nil, nil):
// probing for unknown names is expected and silent. Within one PGDB handle
// the same name always resolves to the same *Frame.
//
// Frames are read-only local views. Remote slot updates go through
// PGDB.PutSlotValue and PGDB.PutSlotValues, and do not refresh frames already
// cached; a handle that must see the change has to be recreated.
//
// Query wrappers such as AllRxns or GenesOfReaction return decoded frame id
// lists without creating frames; they re-query the server on every call.
//
// # Architecture
//
// The package separates concerns:
//
//   - sexpr.go: value encoding into the server's expression syntax
//   - call.go: function call composition with keyword arguments
//   - transport.go: one framed request/response exchange per connection
//   - pgdb.go: organism handle, frame cache, dynamic name resolution
//   - frame.go: lazy frame proxy with read-only slots
//   - queries.go, slots.go: predefined Pathway Tools query wrappers
//
// Every remote exchange opens a fresh connection and closes it before
// returning; nothing is retried automatically, since queries may have side
// effects on the knowledge base. The frame cache is not synchronized:
// concurrent use of one PGDB handle requires external locking.
package gocyc
