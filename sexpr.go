// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Symbol is an evaluated Lisp name. It encodes as a quoted atom ('NAME)
// unless it already sits inside a quoted expression.
type Symbol string

// Keyword is a self-evaluating Lisp keyword (:all, :enzyme, ...). Keywords
// never receive a quote prefix. The leading colon is optional when
// constructing; the encoder normalizes it.
type Keyword string

// Dotted is a fixed-size tuple encoded as a dotted list: all elements but the
// last are space-joined, then " . " and the final element. A one-element
// Dotted encodes as (nil . e0).
type Dotted []any

// EncodeValue converts a Go value into the expression syntax accepted by the
// Pathway Tools Lisp server. inQuote indicates that the value is nested inside
// an already-quoted expression, in which case no further quote prefix is
// emitted.
//
// Only a restricted set of value shapes is supported: Symbol, Keyword, string,
// bool, numbers, nil, *Frame, slices, maps and Dotted tuples. Anything else
// fails with *EncodeError; unsupported values are never silently stringified.
func EncodeValue(v any, inQuote bool) (string, error) {
	switch x := v.(type) {
	case nil:
		return "nil", nil
	case Symbol:
		return quotePrefix(inQuote) + string(x), nil
	case Keyword:
		return ":" + strings.TrimPrefix(string(x), ":"), nil
	case string:
		return encodeString(x, inQuote), nil
	case bool:
		// t and nil, never 1 and 0.
		if x {
			return "t", nil
		}
		return "nil", nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case *Frame:
		// The frameid alone is enough: frame arguments are only ever used
		// inside a with-organism form that already names the PGDB.
		return x.frameid, nil
	case Dotted:
		return encodeDotted(x, inQuote)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return encodeList(rv, inQuote)
	case reflect.Map:
		return encodeMap(rv, inQuote)
	}
	return "", &EncodeError{Value: v}
}

func quotePrefix(inQuote bool) string {
	if inQuote {
		return ""
	}
	return "'"
}

// encodeString distinguishes the three string-borne atom kinds: a |...|
// delimited verbatim identifier, a :keyword, and plain text. Plain text is
// emitted as a double-quoted Lisp string.
func encodeString(s string, inQuote bool) string {
	if len(s) >= 2 && strings.HasPrefix(s, "|") && strings.HasSuffix(s, "|") && !strings.Contains(s, " ") {
		return quotePrefix(inQuote) + s
	}
	if strings.HasPrefix(s, ":") && !strings.Contains(s, " ") {
		// Keywords are self-evaluating; quoting them is a no-op at best.
		return s
	}
	return lispString(s)
}

// lispString emits s as a double-quoted string, escaping backslashes and
// embedded double quotes.
func lispString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func encodeList(rv reflect.Value, inQuote bool) (string, error) {
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		enc, err := EncodeValue(rv.Index(i).Interface(), true)
		if err != nil {
			return "", err
		}
		parts[i] = enc
	}
	return quotePrefix(inQuote) + "(" + strings.Join(parts, " ") + ")", nil
}

// encodeMap turns a map into an alist: a quoted list of (key . value) dotted
// pairs. Map iteration order is not stable in Go, so keys are sorted by their
// encoded form to keep the output deterministic.
func encodeMap(rv reflect.Value, inQuote bool) (string, error) {
	type pair struct {
		key string
		val any
	}
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := EncodeValue(iter.Key().Interface(), true)
		if err != nil {
			return "", err
		}
		pairs = append(pairs, pair{key: k, val: iter.Value().Interface()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		v, err := EncodeValue(p.val, true)
		if err != nil {
			return "", err
		}
		parts[i] = "(" + p.key + " . " + v + ")"
	}
	return quotePrefix(inQuote) + "(" + strings.Join(parts, " ") + ")", nil
}

func encodeDotted(d Dotted, inQuote bool) (string, error) {
	if len(d) == 0 {
		return "", &EncodeError{Value: d}
	}
	parts := make([]string, len(d))
	for i, e := range d {
		enc, err := EncodeValue(e, true)
		if err != nil {
			return "", err
		}
		parts[i] = enc
	}
	if len(parts) == 1 {
		return quotePrefix(inQuote) + "(nil . " + parts[0] + ")", nil
	}
	head := strings.Join(parts[:len(parts)-1], " ")
	return quotePrefix(inQuote) + "(" + head + " . " + parts[len(parts)-1] + ")", nil
}
