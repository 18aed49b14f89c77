// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package specfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/recschema/internal/translate"
)

func noLookup(string) (*translate.TypeDescriptor, bool) { return nil, false }

func parse(t *testing.T, expr string) *translate.TypeDescriptor {
	t.Helper()
	td, err := ParseType(expr, noLookup)
	require.NoError(t, err)
	return td
}

func TestParseType_Scalars(t *testing.T) {
	tests := []struct {
		expr string
		kind translate.TypeKind
	}{
		{"str", translate.KindPrimitive},
		{"string", translate.KindPrimitive},
		{"int", translate.KindPrimitive},
		{"float", translate.KindPrimitive},
		{"bool", translate.KindPrimitive},
		{"bytes", translate.KindPrimitive},
		{"date", translate.KindTemporal},
		{"datetime", translate.KindTemporal},
		{"time", translate.KindTemporal},
		{"any", translate.KindRaw},
		{"none", translate.KindNull},
		{"null", translate.KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.kind, parse(t, tt.expr).Kind)
		})
	}
}

func TestParseType_Containers(t *testing.T) {
	td := parse(t, "list[str]")
	require.Equal(t, translate.KindSequence, td.Kind)
	assert.Equal(t, translate.PrimString, td.Elem.Prim)

	td = parse(t, "dict[str, list[int]]")
	require.Equal(t, translate.KindMapping, td.Kind)
	assert.Equal(t, translate.KindSequence, td.Value.Kind)

	td = parse(t, "set[int]")
	require.Equal(t, translate.KindSet, td.Kind)

	td = parse(t, "list")
	require.Equal(t, translate.KindSequence, td.Kind)
	assert.Nil(t, td.Elem)
}

func TestParseType_Tuples(t *testing.T) {
	td := parse(t, "tuple[int, bool, str]")
	require.Equal(t, translate.KindTuple, td.Kind)
	assert.True(t, td.Fixed)
	assert.Len(t, td.Elems, 3)

	td = parse(t, "tuple[int, ...]")
	require.Equal(t, translate.KindTuple, td.Kind)
	assert.False(t, td.Fixed)
	assert.Equal(t, translate.PrimInt, td.Elem.Prim)

	td = parse(t, "tuple")
	require.Equal(t, translate.KindTuple, td.Kind)
	assert.Nil(t, td.Elem)
	assert.Empty(t, td.Elems)
}

func TestParseType_OptionalAndUnion(t *testing.T) {
	td := parse(t, "optional[date]")
	require.Equal(t, translate.KindOptional, td.Kind)

	td = parse(t, "union[int, str, none]")
	require.Equal(t, translate.KindUnion, td.Kind)
	assert.Len(t, td.Alts, 3)
}

func TestParseType_Literal(t *testing.T) {
	td := parse(t, `literal[1, "two", 3.5, true, null]`)
	require.Equal(t, translate.KindLiteral, td.Kind)
	assert.Equal(t, []any{1, "two", 3.5, true, nil}, td.Values)

	td = parse(t, `literal['only']`)
	assert.Equal(t, []any{"only"}, td.Values)
}

func TestParseType_NamedLookup(t *testing.T) {
	book := &translate.RecordSpec{Name: "Book"}
	lookup := func(name string) (*translate.TypeDescriptor, bool) {
		if name == "Book" {
			return translate.Record(book), true
		}
		return nil, false
	}

	td, err := ParseType("list[Book]", lookup)
	require.NoError(t, err)
	require.Equal(t, translate.KindSequence, td.Kind)
	assert.Same(t, book, td.Elem.Record)
}

func TestParseType_Whitespace(t *testing.T) {
	td := parse(t, "  dict[ str ,  int ]  ")
	require.Equal(t, translate.KindMapping, td.Kind)
	assert.Equal(t, translate.PrimInt, td.Value.Prim)
}

func TestParseType_Errors(t *testing.T) {
	exprs := []string{
		"",
		"list[",
		"list[str",
		"list[str]]",
		"dict[str]",
		"optional",
		"optional[int, str]",
		"union[int]",
		"str[int]",
		"literal",
		"literal[]",
		"literal['unterminated]",
		"tuple[..., int]",
		"list[..., int]",
		"Unknown",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseType(expr, noLookup)
			assert.Error(t, err)
		})
	}
}
