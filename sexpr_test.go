// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPGDB(orgid string) *PGDB {
	return &PGDB{
		orgid:  orgid,
		cfg:    DefaultConfig(),
		frames: make(map[string]*Frame),
		values: make(map[string]any),
	}
}

func mustEncode(t *testing.T, v any, inQuote bool) string {
	t.Helper()
	enc, err := EncodeValue(v, inQuote)
	require.NoError(t, err)
	return enc
}

func TestEncodeSymbol(t *testing.T) {
	assert.Equal(t, "'RXN-9000", mustEncode(t, Symbol("RXN-9000"), false))
	assert.Equal(t, "RXN-9000", mustEncode(t, Symbol("RXN-9000"), true))
}

func TestEncodeStringForms(t *testing.T) {
	// Verbatim |...| identifier.
	assert.Equal(t, "'|TRP|", mustEncode(t, "|TRP|", false))
	assert.Equal(t, "|TRP|", mustEncode(t, "|TRP|", true))

	// Keywords are self-evaluating and never quoted.
	assert.Equal(t, ":all", mustEncode(t, ":all", false))
	assert.Equal(t, ":all", mustEncode(t, ":all", true))
	assert.Equal(t, ":enzyme", mustEncode(t, Keyword("enzyme"), false))
	assert.Equal(t, ":enzyme", mustEncode(t, Keyword(":enzyme"), false))

	// Plain text becomes a Lisp string.
	assert.Equal(t, `"L-tryptophan"`, mustEncode(t, "L-tryptophan", false))
	assert.Equal(t, `"say \"hi\""`, mustEncode(t, `say "hi"`, false))

	// An embedded space disqualifies both special forms.
	assert.Equal(t, `"|A B|"`, mustEncode(t, "|A B|", false))
	assert.Equal(t, `": not a keyword"`, mustEncode(t, ": not a keyword", false))
}

func TestEncodeBoolBeforeNumbers(t *testing.T) {
	// t and nil, never 1 and 0.
	assert.Equal(t, "t", mustEncode(t, true, false))
	assert.Equal(t, "nil", mustEncode(t, false, false))
	assert.Equal(t, "nil", mustEncode(t, nil, false))
	assert.Equal(t, "1", mustEncode(t, 1, false))
	assert.Equal(t, "0", mustEncode(t, 0, false))
}

func TestEncodeNumbers(t *testing.T) {
	assert.Equal(t, "42", mustEncode(t, 42, false))
	assert.Equal(t, "-7", mustEncode(t, int64(-7), false))
	assert.Equal(t, "7.52", mustEncode(t, 7.52, false))
	assert.Equal(t, "3", mustEncode(t, float64(3), false))
}

func TestEncodeFrameReference(t *testing.T) {
	pg := testPGDB("meta")
	f := NewFrame("RXN-9000", pg, false)
	// The frameid alone, never re-quoted.
	assert.Equal(t, "|RXN-9000|", mustEncode(t, f, false))
	assert.Equal(t, "|RXN-9000|", mustEncode(t, f, true))
}

func TestEncodeListVersusDotted(t *testing.T) {
	assert.Equal(t, `'("a" "b" "c")`, mustEncode(t, []any{"a", "b", "c"}, false))
	assert.Equal(t, `'("a" "b" . "c")`, mustEncode(t, Dotted{"a", "b", "c"}, false))
	assert.Equal(t, `'(nil . "a")`, mustEncode(t, Dotted{"a"}, false))
}

func TestEncodeQuoteSuppressionInNestedLists(t *testing.T) {
	// Only the outermost expression gets the quote prefix.
	got := mustEncode(t, []any{Symbol("x"), []any{Symbol("y"), Symbol("z")}}, false)
	assert.Equal(t, "'(x (y z))", got)
	assert.Equal(t, 1, strings.Count(got, "'"))
}

func TestEncodeTypedSlices(t *testing.T) {
	assert.Equal(t, `'("a" "b")`, mustEncode(t, []string{"a", "b"}, false))
	assert.Equal(t, "'(1 2 3)", mustEncode(t, []int{1, 2, 3}, false))
}

func TestEncodeMapIsOrderedAlist(t *testing.T) {
	m := map[string]any{"right": 2, "left": 1}
	got := mustEncode(t, m, false)
	assert.Equal(t, `'(("left" . 1) ("right" . 2))`, got)
}

func TestEncodeUnsupportedValueFails(t *testing.T) {
	type opaque struct{ x int }
	for _, v := range []any{opaque{1}, make(chan int), func() {}} {
		_, err := EncodeValue(v, false)
		var ee *EncodeError
		require.ErrorAs(t, err, &ee, "value %T must not silently stringify", v)
	}
}

func TestEncodeErrorInsideListPropagates(t *testing.T) {
	_, err := EncodeValue([]any{1, make(chan int)}, false)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
}

func TestEncodeEmptyDottedFails(t *testing.T) {
	_, err := EncodeValue(Dotted{}, false)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
}

func TestEncodeGolden(t *testing.T) {
	cases := []struct {
		name  string
		value any
	}{
		{"symbol", Symbol("RXN-9000")},
		{"frameid", "|TRP|"},
		{"keyword", Keyword("all")},
		{"kwstring", ":enzyme"},
		{"text", "L-tryptophan"},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"int", 42},
		{"float", 7.52},
		{"list", []any{"a", "b", "c"}},
		{"nested", []any{Symbol("x"), []any{Symbol("y")}}},
		{"dotted", Dotted{"a", "b", "c"}},
		{"single", Dotted{"a"}},
		{"alist", map[string]any{"left": 1, "right": 2}},
	}
	var b strings.Builder
	for _, c := range cases {
		enc, err := EncodeValue(c.value, false)
		require.NoError(t, err)
		fmt.Fprintf(&b, "%-12s %s\n", c.name, enc)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "encode", []byte(b.String()))
}
