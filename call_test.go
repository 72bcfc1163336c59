// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCallOmitsNilKeywords(t *testing.T) {
	got, err := BuildCall("f", nil, Kwargs{KV("a", nil), KV("b", 5)})
	require.NoError(t, err)
	// No :a token and no whitespace artifacts.
	assert.Equal(t, "(f :b 5)", got)
}

func TestBuildCallKeepsExplicitFalse(t *testing.T) {
	// nil means "use the remote default"; false is a real value.
	got, err := BuildCall("f", nil, Kwargs{KV("x", false)})
	require.NoError(t, err)
	assert.Equal(t, "(f :x nil)", got)
}

func TestBuildCallNoArgs(t *testing.T) {
	got, err := BuildCall("all-cofactors", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "(all-cofactors)", got)
}

func TestBuildCallPositionalAndKeyword(t *testing.T) {
	got, err := BuildCall("enzymes-of-reaction",
		[]any{Symbol("RXN-9000")},
		Kwargs{KV("species", Symbol("ECOLI")), KV("local-only-p", true)})
	require.NoError(t, err)
	assert.Equal(t, "(enzymes-of-reaction 'RXN-9000 :species 'ECOLI :local-only-p t)", got)
}

func TestBuildCallKeywordOrderPreserved(t *testing.T) {
	got, err := BuildCall("f", nil, Kwargs{KV("z", 1), KV("a", 2)})
	require.NoError(t, err)
	assert.Equal(t, "(f :z 1 :a 2)", got)
}

func TestBuildCallEncodeErrorPropagates(t *testing.T) {
	_, err := BuildCall("f", []any{make(chan int)}, nil)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)

	_, err = BuildCall("f", nil, Kwargs{KV("x", make(chan int))})
	require.ErrorAs(t, err, &ee)
}
