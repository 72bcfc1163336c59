// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"strings"
)

// Kwarg is one keyword argument of a remote function call.
type Kwarg struct {
	Name  string
	Value any
}

// Kwargs is an ordered keyword-argument list. Order is preserved on the wire,
// which is why this is a slice and not a map.
type Kwargs []Kwarg

// KV builds a single keyword argument.
func KV(name string, value any) Kwarg {
	return Kwarg{Name: name, Value: value}
}

// BuildCall composes one remote function call expression:
//
//	(fn arg1 arg2 ... :kw1 val1 :kw2 val2 ...)
//
// Keyword arguments whose value is nil are omitted entirely; an explicit
// false is kept and serializes as nil on the wire. A nil value means "let the
// remote function use its own default", not "false". Every argument is
// encoded at top level (not inside a quote); call sites wrap values in Symbol
// or pass lists where the remote function expects data rather than an
// evaluated form.
func BuildCall(fn string, args []any, kwargs Kwargs) (string, error) {
	parts := make([]string, 0, 1+len(args)+2*len(kwargs))
	parts = append(parts, fn)
	for _, arg := range args {
		enc, err := EncodeValue(arg, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, enc)
	}
	for _, kw := range kwargs {
		if kw.Value == nil {
			continue
		}
		enc, err := EncodeValue(kw.Value, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, ":"+kw.Name, enc)
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}
