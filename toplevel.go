// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import "context"

// Functions callable before any organism has been selected.

// AllOrgids returns the orgids of every PGDB available from the running
// Pathway Tools server.
func AllOrgids(ctx context.Context, cfg Config) ([]any, error) {
	r, err := SendQuery(ctx, cfg, "(all-orgids)")
	if err != nil {
		return nil, err
	}
	if l, ok := r.([]any); ok {
		return l, nil
	}
	return nil, nil
}

// BioVelo executes a BioVelo query, e.g.
//
//	[(p, reactions-of-pathway(p)): p<-ecoli^^pathways]
//
// and returns whatever the query computes.
func BioVelo(ctx context.Context, cfg Config, query string) (any, error) {
	call, err := BuildCall("biovelo", []any{query}, nil)
	if err != nil {
		return nil, err
	}
	return SendQuery(ctx, cfg, call)
}

// RunFBA runs flux balance analysis without selecting an organism first; the
// FBA input file names the organism itself.
func RunFBA(ctx context.Context, cfg Config, fileName string) (any, error) {
	call, err := BuildCall("python-run-fba", []any{fileName}, nil)
	if err != nil {
		return nil, err
	}
	return SendQuery(ctx, cfg, call)
}
