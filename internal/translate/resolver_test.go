// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveJSON(t *testing.T, td *TypeDescriptor, ann *Annotation) string {
	t.Helper()
	tr := newTranslation(&RecordSpec{Name: "Root"})
	frag, err := tr.resolveType(td, false, nil, ann, "f")
	require.NoError(t, err)
	out, err := json.Marshal(frag)
	require.NoError(t, err)
	return string(out)
}

func TestResolve_Primitives(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
		want string
	}{
		{"string", String(), `{"type":"string"}`},
		{"int", Int(), `{"type":"integer"}`},
		{"float", Float(), `{"type":"number"}`},
		{"bool", Bool(), `{"type":"boolean"}`},
		{"bytes", Bytes(), `{"type":"string","contentEncoding":"base64"}`},
		{"null", Null(), `{"type":"null"}`},
		{"raw", Raw(), `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJSON(t, tt.td, nil))
		})
	}
}

func TestResolve_Temporals(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
		want string
	}{
		{"date", Date(), `{"type":"string","format":"date"}`},
		{"datetime", DateTime(), `{"type":"string","format":"date-time"}`},
		{"time", Time(), `{"type":"string","format":"time"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJSON(t, tt.td, nil))
		})
	}
}

func TestResolve_Containers(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
		want string
	}{
		{"sequence", Sequence(Bool()), `{"type":"array","items":{"type":"boolean"}}`},
		{"untyped sequence", Sequence(nil), `{"type":"array"}`},
		{"set", Set(Int()), `{"type":"array","items":{"type":"integer"},"uniqueItems":true}`},
		{"untyped set", Set(nil), `{"type":"array","uniqueItems":true}`},
		{"mapping", Mapping(String(), Int()), `{"type":"object","additionalProperties":{"type":"integer"}}`},
		{"untyped mapping", Mapping(nil, nil), `{"type":"object"}`},
		{"fixed tuple", Tuple(Int(), String()), `{"type":"array","prefixItems":[{"type":"integer"},{"type":"string"}],"minItems":2,"maxItems":2}`},
		{"variable tuple", VarTuple(Int()), `{"type":"array","items":{"type":"integer"}}`},
		{"untyped tuple", VarTuple(nil), `{"type":"array"}`},
		{"nested sequence", Sequence(Sequence(String())), `{"type":"array","items":{"type":"array","items":{"type":"string"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJSON(t, tt.td, nil))
		})
	}
}

func TestResolve_MappingNonStringKey(t *testing.T) {
	tr := newTranslation(&RecordSpec{Name: "Root"})
	_, err := tr.resolveType(Mapping(Int(), String()), false, nil, nil, "scores")

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "scores", unsupported.Path)
	assert.Contains(t, err.Error(), "mapping keys must be strings")
}

func TestResolve_EnumAndLiteral(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
		want string
	}{
		{"enum", Enum("Hobby", "chess", "soccer"), `{"enum":["chess","soccer"]}`},
		{"literal multi", Literal(1, "two", 3, nil), `{"enum":[1,"two",3,null]}`},
		{"literal single", Literal("fixed"), `{"const":"fixed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJSON(t, tt.td, nil))
		})
	}
}

func TestResolve_EmptyEnumAndLiteralFail(t *testing.T) {
	tr := newTranslation(&RecordSpec{Name: "Root"})

	_, err := tr.resolveType(Enum("Empty"), false, nil, nil, "e")
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)

	_, err = tr.resolveType(Literal(), false, nil, nil, "l")
	require.ErrorAs(t, err, &unsupported)
}

func TestResolve_OptionalAlwaysWrapsInAnyOf(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
		want string
	}{
		{"optional string", Optional(String()), `{"anyOf":[{"type":"string"},{"type":"null"}]}`},
		{"optional array", Optional(Sequence(Int())), `{"anyOf":[{"type":"array","items":{"type":"integer"}},{"type":"null"}]}`},
		{"optional raw", Optional(Raw()), `{"anyOf":[{},{"type":"null"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveJSON(t, tt.td, nil))
		})
	}
}

func TestResolve_Union(t *testing.T) {
	assert.Equal(t,
		`{"anyOf":[{"type":"integer"},{"type":"string"}]}`,
		resolveJSON(t, Union(Int(), String()), nil))

	// A null alternative is a plain anyOf member, never double-wrapped.
	assert.Equal(t,
		`{"anyOf":[{"type":"null"},{"type":"integer"}]}`,
		resolveJSON(t, Union(Null(), Int()), nil))
}

func TestResolve_UnionNeedsTwoAlternatives(t *testing.T) {
	tr := newTranslation(&RecordSpec{Name: "Root"})
	_, err := tr.resolveType(Union(Int()), false, nil, nil, "u")

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestResolve_AnnotationMergesIntoFragment(t *testing.T) {
	minLen, maxLen := 3, 5
	ann := &Annotation{MinLength: &minLen, MaxLength: &maxLen}
	assert.Equal(t,
		`{"type":"string","minLength":3,"maxLength":5}`,
		resolveJSON(t, String(), ann))
}

func TestResolve_AnnotationFormatOverridesInPlace(t *testing.T) {
	// Overriding the base format must not move the key.
	ann := &Annotation{Format: "date", Pattern: `^\d.*`}
	assert.Equal(t,
		`{"type":"string","format":"date","pattern":"^\\d.*"}`,
		resolveJSON(t, DateTime(), ann))
}

func TestResolve_AnnotationUniqueItemsOverride(t *testing.T) {
	unique := false
	ann := &Annotation{UniqueItems: &unique}
	assert.Equal(t,
		`{"type":"array","items":{"type":"integer"},"uniqueItems":false}`,
		resolveJSON(t, Set(Int()), ann))
}

func TestResolve_AnnotationOnRecordRefStaysSiblingOfAllOf(t *testing.T) {
	child := &RecordSpec{Name: "Child", Fields: []FieldSpec{{Name: "c", Type: String()}}}
	tr := newTranslation(&RecordSpec{Name: "Root"})

	frag, err := tr.resolveType(Record(child), false, nil, &Annotation{Description: "a child"}, "kid")
	require.NoError(t, err)

	out, err := json.Marshal(frag)
	require.NoError(t, err)
	assert.Equal(t, `{"allOf":[{"$ref":"#/$defs/Child"}],"description":"a child"}`, string(out))
}

func TestResolve_DepthLimit(t *testing.T) {
	td := Int()
	for range maxDepth + 10 {
		td = Sequence(td)
	}

	tr := newTranslation(&RecordSpec{Name: "Root"})
	_, err := tr.resolveType(td, false, nil, nil, "deep")

	var depth *DepthError
	require.ErrorAs(t, err, &depth)
	assert.Equal(t, maxDepth, depth.Limit)
}

func TestResolve_NilAndUnknownDescriptors(t *testing.T) {
	tr := newTranslation(&RecordSpec{Name: "Root"})

	var unsupported *UnsupportedTypeError
	_, err := tr.resolveType(nil, false, nil, nil, "a")
	require.ErrorAs(t, err, &unsupported)

	_, err = tr.resolveType(&TypeDescriptor{}, false, nil, nil, "b")
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "b", unsupported.Path)
}

func TestResolve_NilCompositeElements(t *testing.T) {
	tests := []struct {
		name string
		td   *TypeDescriptor
	}{
		{"mapping value", Mapping(String(), nil)},
		{"union alternative", Union(Int(), nil)},
		{"tuple element", Tuple(Int(), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslation(&RecordSpec{Name: "Root"})
			_, err := tr.resolveType(tt.td, false, nil, nil, "f")

			var unsupported *UnsupportedTypeError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, "f", unsupported.Path)
		})
	}
}
