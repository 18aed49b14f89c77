// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate converts record type definitions into JSON Schema
// (draft 2020-12) documents. Frontends build RecordSpec values through
// whatever facility the host offers (reflection, definition files) and
// hand them to GetSchema; the engine itself only ever sees the
// TypeDescriptor and FieldSpec abstractions defined here.
package translate

// TypeKind discriminates the variants of a TypeDescriptor.
type TypeKind int

const (
	KindInvalid TypeKind = iota
	KindPrimitive
	KindTemporal
	KindRaw
	KindNull
	KindOptional
	KindUnion
	KindSequence
	KindSet
	KindTuple
	KindMapping
	KindEnum
	KindLiteral
	KindRecord
)

// Primitive enumerates scalar kinds.
type Primitive int

const (
	PrimString Primitive = iota
	PrimInt
	PrimFloat
	PrimBool
	PrimBytes
)

// Temporal enumerates date/time kinds, all rendered as formatted strings.
type Temporal int

const (
	TempDate Temporal = iota
	TempDateTime
	TempTime
)

// TypeDescriptor describes a declared field type. Exactly one variant is
// active, selected by Kind; the other fields are ignored.
type TypeDescriptor struct {
	Kind TypeKind

	Prim     Primitive         // KindPrimitive
	Temporal Temporal          // KindTemporal
	Elem     *TypeDescriptor   // KindOptional, KindSequence, KindSet, variable KindTuple; nil means untyped container
	Key      *TypeDescriptor   // KindMapping key; must be a string primitive
	Value    *TypeDescriptor   // KindMapping value; nil means untyped mapping
	Alts     []*TypeDescriptor // KindUnion alternatives
	Elems    []*TypeDescriptor // fixed-length KindTuple elements
	Fixed    bool              // KindTuple: fixed-length form
	Name     string            // KindEnum declaration name
	Members  []any             // KindEnum member values, declaration order
	Values   []any             // KindLiteral values
	Record   *RecordSpec       // KindRecord
}

// FieldSpec is a single declared field of a record.
type FieldSpec struct {
	Name       string
	Type       *TypeDescriptor
	HasDefault bool
	Default    any // JSON-compatible value; only meaningful when HasDefault
	Annotation *Annotation
}

// RecordSpec is a record type: a named, ordered set of fields.
// Identity is the *RecordSpec pointer, not the name; two distinct specs
// sharing a name trigger a NameCollisionError during translation.
type RecordSpec struct {
	Name   string
	Fields []FieldSpec
	Config *Annotation // record-level metadata; title and description only
}

// Constructors for the descriptor variants. Frontends use these instead
// of filling TypeDescriptor structs by hand.

func String() *TypeDescriptor { return &TypeDescriptor{Kind: KindPrimitive, Prim: PrimString} }
func Int() *TypeDescriptor    { return &TypeDescriptor{Kind: KindPrimitive, Prim: PrimInt} }
func Float() *TypeDescriptor  { return &TypeDescriptor{Kind: KindPrimitive, Prim: PrimFloat} }
func Bool() *TypeDescriptor   { return &TypeDescriptor{Kind: KindPrimitive, Prim: PrimBool} }
func Bytes() *TypeDescriptor  { return &TypeDescriptor{Kind: KindPrimitive, Prim: PrimBytes} }

func Date() *TypeDescriptor     { return &TypeDescriptor{Kind: KindTemporal, Temporal: TempDate} }
func DateTime() *TypeDescriptor { return &TypeDescriptor{Kind: KindTemporal, Temporal: TempDateTime} }
func Time() *TypeDescriptor     { return &TypeDescriptor{Kind: KindTemporal, Temporal: TempTime} }

// Raw is the unconstrained type: it resolves to the empty schema.
func Raw() *TypeDescriptor  { return &TypeDescriptor{Kind: KindRaw} }
func Null() *TypeDescriptor { return &TypeDescriptor{Kind: KindNull} }

func Optional(inner *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindOptional, Elem: inner}
}

func Union(alts ...*TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindUnion, Alts: alts}
}

// Sequence describes a homogeneous array. A nil elem means an untyped
// array, emitted without an items constraint.
func Sequence(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindSequence, Elem: elem}
}

func Set(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindSet, Elem: elem}
}

// Tuple describes a fixed-length heterogeneous array.
func Tuple(elems ...*TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindTuple, Fixed: true, Elems: elems}
}

// VarTuple describes a variable-length homogeneous tuple, which renders
// the same way as a Sequence.
func VarTuple(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindTuple, Elem: elem}
}

// Mapping describes an object with uniform values. Keys must be string
// typed; a nil key/value pair means an untyped mapping.
func Mapping(key, value *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindMapping, Key: key, Value: value}
}

func Enum(name string, members ...any) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindEnum, Name: name, Members: members}
}

func Literal(values ...any) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindLiteral, Values: values}
}

func Record(spec *RecordSpec) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindRecord, Record: spec}
}
